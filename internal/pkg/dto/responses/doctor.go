package responses

import "carebook-service/internal/app/models"

type Doctor struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"user_id"`
	Specializations   []string                 `json:"specializations"`
	Qualifications    []models.Qualification   `json:"qualifications,omitempty"`
	Availability      []models.DayAvailability `json:"availability,omitempty"`
	ConsultationFee   float64                  `json:"consultation_fee,omitempty"`
	YearsOfExperience int                      `json:"years_of_experience,omitempty"`
	Bio               string                   `json:"bio,omitempty"`

	// Enriched from the user service; omitted when the lookup fails.
	Fullname string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
}
