package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionFeedbacks     = "feedbacks"
	MongoCollectionNotifications = "notifications"
)
