package config

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Services Services
		Mailer   Mailer
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env                      string
		Version                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		SessionTTLInHour         int
		UpstreamTimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Services carries the listen port and base URL of every service. Each binary only
	// uses its own port plus the base URLs of the services it calls.
	Services struct {
		UserServicePort         string
		DoctorServicePort       string
		AppointmentServicePort  string
		FeedbackServicePort     string
		NotificationServicePort string

		UserServiceBaseURL         string
		DoctorServiceBaseURL       string
		AppointmentServiceBaseURL  string
		FeedbackServiceBaseURL     string
		NotificationServiceBaseURL string
	}

	Mailer struct {
		Queue          string
		SendsPerSecond int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
