package responses

import "time"

type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	RelatedID    string    `json:"related_id,omitempty"`
	IsRead       bool      `json:"is_read"`
	SentViaEmail bool      `json:"sent_via_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}

type AppointmentEventOutcome struct {
	AppointmentID        string `json:"appointment_id"`
	Event                string `json:"event"`
	NotificationsCreated int    `json:"notifications_created"`
	EmailsQueued         int    `json:"emails_queued"`
}
