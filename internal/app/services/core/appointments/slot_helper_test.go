package appointments

import (
	"carebook-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	window := models.DayAvailability{
		Day:         "monday",
		StartTime:   "09:00",
		EndTime:     "12:00",
		IsAvailable: true,
	}

	t.Run("full window with nothing booked", func(t *testing.T) {
		slots := generateSlots(window, map[string]bool{})
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
	})

	t.Run("booked starts are removed", func(t *testing.T) {
		slots := generateSlots(window, map[string]bool{"09:30": true, "11:00": true})
		assert.Equal(t, []string{"09:00", "10:00", "10:30", "11:30"}, slots)
	})

	t.Run("trailing partial interval is dropped", func(t *testing.T) {
		short := models.DayAvailability{
			Day:         "monday",
			StartTime:   "09:00",
			EndTime:     "10:15",
			IsAvailable: true,
		}
		slots := generateSlots(short, map[string]bool{})
		assert.Equal(t, []string{"09:00", "09:30"}, slots)
	})

	t.Run("unavailable day yields no slots", func(t *testing.T) {
		off := window
		off.IsAvailable = false
		slots := generateSlots(off, map[string]bool{})
		assert.Empty(t, slots)
	})

	t.Run("window shorter than one slot yields no slots", func(t *testing.T) {
		tiny := models.DayAvailability{
			Day:         "monday",
			StartTime:   "09:00",
			EndTime:     "09:15",
			IsAvailable: true,
		}
		slots := generateSlots(tiny, map[string]bool{})
		assert.Empty(t, slots)
	})

	t.Run("fully booked window yields no slots", func(t *testing.T) {
		booked := map[string]bool{
			"09:00": true, "09:30": true, "10:00": true,
			"10:30": true, "11:00": true, "11:30": true,
		}
		slots := generateSlots(window, booked)
		assert.Empty(t, slots)
	})
}

func TestBookedStartTimeSet(t *testing.T) {
	appointments := []models.Appointment{
		{StartTime: "09:00"},
		{StartTime: "10:30"},
		{StartTime: "09:00"},
	}
	booked := bookedStartTimeSet(appointments)
	assert.Len(t, booked, 2)
	assert.True(t, booked["09:00"])
	assert.True(t, booked["10:30"])
	assert.False(t, booked["11:00"])
}
