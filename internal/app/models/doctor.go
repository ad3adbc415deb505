package models

// Qualification is one earned degree on a doctor profile.
type Qualification struct {
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	Year        int    `json:"year" bson:"year"`
}

// DayAvailability is one entry of the weekly template. Times are "15:04" wall-clock
// strings, timezone-naive on purpose.
type DayAvailability struct {
	Day         string `json:"day" bson:"day"`
	StartTime   string `json:"startTime" bson:"startTime"`
	EndTime     string `json:"endTime" bson:"endTime"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
}

type Doctor struct {
	ID                string            `bson:"_id,omitempty"`
	UserID            string            `bson:"userId"`
	Specializations   []string          `bson:"specializations"`
	Qualifications    []Qualification   `bson:"qualifications"`
	Availability      []DayAvailability `bson:"availability"`
	ConsultationFee   float64           `bson:"consultationFee,omitempty"`
	YearsOfExperience int               `bson:"yearsOfExperience,omitempty"`
	Bio               string            `bson:"bio,omitempty"`
	TimeModel         `bson:",inline"`
}

// AvailabilityForDay returns the template entry for a lowercase weekday name.
func (d *Doctor) AvailabilityForDay(day string) (DayAvailability, bool) {
	for _, entry := range d.Availability {
		if entry.Day == day {
			return entry, true
		}
	}
	return DayAvailability{}, false
}
