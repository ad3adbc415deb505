package responses

type Appointment struct {
	ID               string `json:"id"`
	PatientID        string `json:"patient_id"`
	DoctorID         string `json:"doctor_id"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"`
	Notes            string `json:"notes,omitempty"`
	NotificationSent bool   `json:"notification_sent"`

	// Enriched via cross-service lookups; omitted when a lookup fails.
	PatientName string `json:"patient_name,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}

type AvailableSlots struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
