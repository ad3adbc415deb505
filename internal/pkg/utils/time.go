package utils

import (
	"carebook-service/internal/pkg/constvars"
	"strings"
	"time"
)

// IsTimeWithinRange reports whether requestedTime falls inside [startTime, endTime)
// on the "15:04" wall-clock grid.
func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, err := time.Parse(constvars.SlotTimeLayout, requestedTime)
	if err != nil {
		return false
	}
	start, err := time.Parse(constvars.SlotTimeLayout, startTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(constvars.SlotTimeLayout, endTime)
	if err != nil {
		return false
	}

	return requested.Equal(start) || (requested.After(start) && requested.Before(end))
}

// CalculateSlotEndTime returns the wall-clock end of a slot starting at startTime.
func CalculateSlotEndTime(startTime string) string {
	start, err := time.Parse(constvars.SlotTimeLayout, startTime)
	if err != nil {
		return startTime
	}
	end := start.Add(constvars.SlotDurationInMinutes * time.Minute)
	return end.Format(constvars.SlotTimeLayout)
}

// WeekdayNameFromDate derives the lowercase weekday name ("monday".."sunday") from a
// "2006-01-02" date string.
func WeekdayNameFromDate(date string) (string, error) {
	parsed, err := time.Parse(constvars.SlotDateLayout, date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(parsed.Weekday().String()), nil
}
