package constvars

const (
	CONTEXT_REQUEST_ID_KEY   = "requestID"
	CONTEXT_SESSION_DATA_KEY = "sessionData"
	CONTEXT_SESSION_ID_KEY   = "sessionID"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationTypeAppointment = "appointment"
	NotificationTypeSystem      = "system"
	NotificationTypeFeedback    = "feedback"
)

const (
	AppointmentEventBooked    = "booked"
	AppointmentEventCompleted = "completed"
	AppointmentEventCancelled = "cancelled"
)

// Slots are generated on a fixed half-hour grid.
const (
	SlotDurationInMinutes = 30
	SlotTimeLayout        = "15:04"
	SlotDateLayout        = "2006-01-02"
)

const (
	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};:'",<>\./\?\\|]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
)
