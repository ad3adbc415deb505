package requests

type QualificationEntry struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        int    `json:"year" validate:"required,min=1900"`
}

type DayAvailabilityEntry struct {
	Day         string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   string `json:"start_time" validate:"required,wallclock"`
	EndTime     string `json:"end_time" validate:"required,wallclock"`
	IsAvailable bool   `json:"is_available"`
}

type CreateDoctor struct {
	Specializations   []string               `json:"specializations" validate:"required,min=1"`
	Qualifications    []QualificationEntry   `json:"qualifications" validate:"omitempty,dive"`
	Availability      []DayAvailabilityEntry `json:"availability" validate:"omitempty,max=7,dive"`
	ConsultationFee   float64                `json:"consultation_fee,omitempty"`
	YearsOfExperience int                    `json:"years_of_experience,omitempty"`
	Bio               string                 `json:"bio,omitempty" validate:"max=1000"`
}

type UpdateDoctor struct {
	Specializations   []string             `json:"specializations" validate:"required,min=1"`
	Qualifications    []QualificationEntry `json:"qualifications" validate:"omitempty,dive"`
	ConsultationFee   float64              `json:"consultation_fee,omitempty"`
	YearsOfExperience int                  `json:"years_of_experience,omitempty"`
	Bio               string               `json:"bio,omitempty" validate:"max=1000"`
}

// UpdateAvailability replaces the whole weekly template; slots mutate independently of
// the rest of the profile.
type UpdateAvailability struct {
	Availability []DayAvailabilityEntry `json:"availability" validate:"required,min=1,max=7,dive"`
}
