package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTimeWithinRange(t *testing.T) {
	t.Run("start of window is inside", func(t *testing.T) {
		assert.True(t, IsTimeWithinRange("09:00", "09:00", "17:00"))
	})

	t.Run("end of window is outside", func(t *testing.T) {
		assert.False(t, IsTimeWithinRange("17:00", "09:00", "17:00"))
	})

	t.Run("middle of window is inside", func(t *testing.T) {
		assert.True(t, IsTimeWithinRange("12:30", "09:00", "17:00"))
	})

	t.Run("before window is outside", func(t *testing.T) {
		assert.False(t, IsTimeWithinRange("08:30", "09:00", "17:00"))
	})

	t.Run("unparseable time is outside", func(t *testing.T) {
		assert.False(t, IsTimeWithinRange("not-a-time", "09:00", "17:00"))
	})
}

func TestCalculateSlotEndTime(t *testing.T) {
	assert.Equal(t, "09:30", CalculateSlotEndTime("09:00"))
	assert.Equal(t, "17:00", CalculateSlotEndTime("16:30"))

	t.Run("crosses the hour", func(t *testing.T) {
		assert.Equal(t, "10:15", CalculateSlotEndTime("09:45"))
	})
}

func TestWeekdayNameFromDate(t *testing.T) {
	t.Run("known weekday", func(t *testing.T) {
		day, err := WeekdayNameFromDate("2025-01-06")
		assert.NoError(t, err)
		assert.Equal(t, "monday", day)
	})

	t.Run("sunday", func(t *testing.T) {
		day, err := WeekdayNameFromDate("2025-01-05")
		assert.NoError(t, err)
		assert.Equal(t, "sunday", day)
	})

	t.Run("bad date errors", func(t *testing.T) {
		_, err := WeekdayNameFromDate("06-01-2025")
		assert.Error(t, err)
	})
}
