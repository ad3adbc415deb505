package responses

type Feedback struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`

	// Enriched via the user service; omitted when the lookup fails.
	PatientName string `json:"patient_name,omitempty"`
}

type FeedbackStats struct {
	DoctorID      string      `json:"doctor_id"`
	TotalCount    int         `json:"total_count"`
	AverageRating float64     `json:"average_rating"`
	RatingCounts  map[int]int `json:"rating_counts"`
}
