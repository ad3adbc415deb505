package constvars

// Client-facing messages. Keep these generic; the dev message carries detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientResourceNotFound              = "The requested resource was not found"
	ErrClientSlotAlreadyBooked             = "The requested time is already booked or not available"
	ErrClientInvalidStatusTransition       = "The appointment status cannot be changed to the requested value"
	ErrClientAppointmentNotCompleted       = "Feedback can only be submitted for a completed appointment"
	ErrClientFeedbackAlreadyExists         = "Feedback has already been submitted for this appointment"
	ErrClientDoctorProfileExists           = "A doctor profile already exists for this user"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Dev messages.
const (
	ErrDevValidationFailed           = "validation failed on request payload"
	ErrDevURLParamIDValidationFailed = "validation failed on URL parameter: %s"
	ErrDevCannotParseJSON            = "cannot parse request body as JSON"
	ErrDevCannotParseDate            = "cannot parse date string"
	ErrDevCannotParseTime            = "cannot parse time string"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials supplied"
	ErrDevEmailAlreadyExists         = "email already exists in users collection"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevDoctorNotExists            = "doctor profile does not exist"
	ErrDevAppointmentNotExists       = "appointment does not exist"
	ErrDevNotificationNotExists      = "notification does not exist"
	ErrDevFeedbackNotExists          = "feedback does not exist"
	ErrDevAuthTokenMissing           = "auth token missing from request headers"
	ErrDevAuthTokenInvalid           = "auth token invalid"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthInvalidSession         = "session not found or expired in redis"
	ErrDevAuthGenerateToken          = "failed to generate JWT token"
	ErrDevAuthSigningMethod          = "unexpected JWT signing method"
	ErrDevNotMatchRoleType           = "caller role does not allow this operation"
	ErrDevNotResourceOwner           = "caller does not own the requested resource"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"

	ErrDevMongoDBFailedToInsertDocument = "mongodb failed to insert document"
	ErrDevMongoDBFailedToFindDocument   = "mongodb failed to find document"
	ErrDevMongoDBFailedToUpdateDocument = "mongodb failed to update document"
	ErrDevMongoDBFailedToDeleteDocument = "mongodb failed to delete document"
	ErrDevMongoDBFailedToAggregate      = "mongodb failed to run aggregation"
	ErrDevMongoDBNotObjectID            = "supplied id is not a valid mongodb object id"

	ErrDevCannotMarshalJSON    = "cannot marshal payload to JSON"
	ErrDevCreateHTTPRequest    = "cannot create HTTP request"
	ErrDevSendHTTPRequest      = "cannot send HTTP request"
	ErrDevDecodeResponse       = "cannot decode response from %s"
	ErrDevUpstreamResponse     = "upstream service %s responded with an error"
	ErrDevRedisFailedToSet     = "redis failed to set key"
	ErrDevRedisFailedToGet     = "redis failed to get key"
	ErrDevRedisFailedToDelete  = "redis failed to delete key"
	ErrDevPublishMailerMessage = "failed to publish message to mailer queue"
	ErrDevSMTPSendEmail        = "smtp server %s failed to send email"
)
