package requests

type CreateNotification struct {
	UserID    string `json:"user_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=500"`
	Type      string `json:"type" validate:"required,oneof=appointment system feedback"`
	RelatedID string `json:"related_id,omitempty"`
}

// AppointmentEvent triggers the per-recipient fan-out on the notification service.
type AppointmentEvent struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	Event         string `json:"event" validate:"required,oneof=booked completed cancelled"`
}
