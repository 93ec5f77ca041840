package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
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
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		Backend  Backend
		JWT      JWT
		Booking  Booking
		Session  Session
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
		MongoDB  AppMongoDB
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		FrontendDomain             string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}
	// Backend is the remote booking API every business call is proxied to.
	Backend struct {
		BaseUrl               string
		RequestTimeoutSeconds int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Booking struct {
		LockTTLSeconds           int
		FlowTTLMinutes           int
		RateLimitPerMinute       int
		RateLimitBlockSeconds    int
		AnalyticsCacheTTLSeconds int
	}
	Session struct {
		ExpTimeInHour int
	}
	AppMinio struct {
		BucketName                          string
		ProfilePictureMaxUploadSizeInMB     int64
		PreSignedUrlObjectExpiryTimeInHours int
	}
	AppRabbitMQ struct {
		BookingEventQueue string
	}
	AppMongoDB struct {
		BookingAttemptCollection string
	}
)
