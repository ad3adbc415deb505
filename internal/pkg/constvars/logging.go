package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingUserIDKey         = "user_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingNotificationIDKey = "notification_id"
	LoggingFeedbackIDKey     = "feedback_id"
	LoggingDateKey           = "date"
	LoggingStatusKey         = "status"
	LoggingSlotsCountKey     = "slots_count"
	LoggingResponseCountKey  = "response_count"
	LoggingEmailKey          = "email"
	LoggingEventKey          = "event"
)
