package appointments

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"time"
)

// generateSlots walks the availability window in fixed steps and drops slot starts
// already taken. A slot whose end would pass the window end is not emitted, so a
// trailing partial interval never appears.
func generateSlots(availability models.DayAvailability, bookedStartTimes map[string]bool) []string {
	slots := []string{}
	if !availability.IsAvailable {
		return slots
	}

	start, err := time.Parse(constvars.SlotTimeLayout, availability.StartTime)
	if err != nil {
		return slots
	}
	end, err := time.Parse(constvars.SlotTimeLayout, availability.EndTime)
	if err != nil {
		return slots
	}

	step := constvars.SlotDurationInMinutes * time.Minute
	for cursor := start; !cursor.Add(step).After(end); cursor = cursor.Add(step) {
		slotStart := cursor.Format(constvars.SlotTimeLayout)
		if bookedStartTimes[slotStart] {
			continue
		}
		slots = append(slots, slotStart)
	}
	return slots
}

func bookedStartTimeSet(appointments []models.Appointment) map[string]bool {
	booked := make(map[string]bool, len(appointments))
	for _, appointment := range appointments {
		booked[appointment.StartTime] = true
	}
	return booked
}
