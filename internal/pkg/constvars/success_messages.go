package constvars

const (
	RegisterSuccessMessage            = "Successfully registered"
	LoginSuccessMessage               = "Successfully logged in"
	LogoutSuccessMessage              = "Successfully logged out"
	GetProfileSuccessMessage          = "Successfully retrieved profile"
	UpdateUserSuccessMessage          = "Successfully updated user"
	GetUserSuccessMessage             = "Successfully retrieved user"
	CreateDoctorSuccessMessage        = "Successfully created doctor profile"
	GetDoctorSuccessMessage           = "Successfully retrieved doctor"
	GetDoctorsSuccessMessage          = "Successfully retrieved doctors"
	UpdateDoctorSuccessMessage        = "Successfully updated doctor"
	UpdateAvailabilitySuccessMessage  = "Successfully updated availability"
	CreateAppointmentSuccessMessage   = "Successfully booked appointment"
	GetAppointmentSuccessMessage      = "Successfully retrieved appointment"
	GetAppointmentsSuccessMessage     = "Successfully retrieved appointments"
	UpdateAppointmentSuccessMessage   = "Successfully updated appointment status"
	GetSlotsSuccessMessage            = "Successfully retrieved available slots"
	CreateFeedbackSuccessMessage      = "Successfully submitted feedback"
	GetFeedbackSuccessMessage         = "Successfully retrieved feedback"
	GetFeedbackStatsSuccessMessage    = "Successfully retrieved feedback statistics"
	CreateNotificationSuccessMessage  = "Successfully created notification"
	GetNotificationsSuccessMessage    = "Successfully retrieved notifications"
	MarkNotificationReadSuccess       = "Successfully marked notification as read"
	GetUnreadCountSuccessMessage      = "Successfully retrieved unread count"
	AppointmentEventAcceptedMessage   = "Appointment event accepted"
	HealthCheckSuccessMessage         = "Service is healthy"
)
