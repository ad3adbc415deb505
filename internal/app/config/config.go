package config

import (
	"carebook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carebook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@carebook.local"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "v1"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionTTLInHour:         utils.GetEnvInt("APP_SESSION_TTL_IN_HOUR", 24),
			UpstreamTimeoutInSeconds: utils.GetEnvInt("APP_UPSTREAM_TIMEOUT_IN_SECONDS", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Services: Services{
			UserServicePort:         utils.GetEnvString("USER_SERVICE_PORT", ":3001"),
			DoctorServicePort:       utils.GetEnvString("DOCTOR_SERVICE_PORT", ":3002"),
			AppointmentServicePort:  utils.GetEnvString("APPOINTMENT_SERVICE_PORT", ":3003"),
			FeedbackServicePort:     utils.GetEnvString("FEEDBACK_SERVICE_PORT", ":3004"),
			NotificationServicePort: utils.GetEnvString("NOTIFICATION_SERVICE_PORT", ":3005"),

			UserServiceBaseURL:         utils.GetEnvString("USER_SERVICE_BASE_URL", "http://localhost:3001"),
			DoctorServiceBaseURL:       utils.GetEnvString("DOCTOR_SERVICE_BASE_URL", "http://localhost:3002"),
			AppointmentServiceBaseURL:  utils.GetEnvString("APPOINTMENT_SERVICE_BASE_URL", "http://localhost:3003"),
			FeedbackServiceBaseURL:     utils.GetEnvString("FEEDBACK_SERVICE_BASE_URL", "http://localhost:3004"),
			NotificationServiceBaseURL: utils.GetEnvString("NOTIFICATION_SERVICE_BASE_URL", "http://localhost:3005"),
		},
		Mailer: Mailer{
			Queue:          utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "carebook.mailer"),
			SendsPerSecond: utils.GetEnvInt("APP_MAILER_SENDS_PER_SECOND", 5),
		},
	}
}
