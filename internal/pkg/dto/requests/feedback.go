package requests

type CreateFeedback struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment,omitempty" validate:"max=1000"`

	// Filled from the session, never from the client.
	PatientID string `json:"-"`
}
