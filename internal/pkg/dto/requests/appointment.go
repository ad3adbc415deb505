package requests

type CreateAppointment struct {
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required,wallclock"`
	Reason    string `json:"reason,omitempty" validate:"max=500"`

	// Filled from the session, never from the client.
	PatientID string `json:"-"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

type AppointmentQuery struct {
	PatientID string
	DoctorID  string
	Date      string
	Status    string
}
