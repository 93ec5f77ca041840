package config

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Backend: Backend{
			BaseUrl:               utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api/v1"),
			RequestTimeoutSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", int(constvars.BackendRequestTimeout.Seconds())),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Booking: Booking{
			LockTTLSeconds:           utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", int(constvars.BookingLockExpiration.Seconds())),
			FlowTTLMinutes:           utils.GetEnvInt("BOOKING_FLOW_TTL_IN_MINUTES", int(constvars.BookingFlowExpiration.Minutes())),
			RateLimitPerMinute:       utils.GetEnvInt("BOOKING_RATE_LIMIT_PER_MINUTE", 20),
			RateLimitBlockSeconds:    utils.GetEnvInt("BOOKING_RATE_LIMIT_BLOCK_IN_SECONDS", 60),
			AnalyticsCacheTTLSeconds: utils.GetEnvInt("ANALYTICS_CACHE_TTL_IN_SECONDS", int(constvars.AnalyticsCacheExpiration.Seconds())),
		},
		Session: Session{
			ExpTimeInHour: utils.GetEnvInt("SESSION_EXP_TIME_IN_HOUR", 24),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "medibook"),
			ProfilePictureMaxUploadSizeInMB:     int64(utils.GetEnvInt("MINIO_PROFILE_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 2)),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_EXPIRY_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			BookingEventQueue: utils.GetEnvString("RABBITMQ_BOOKING_EVENT_QUEUE", "appointment_events"),
		},
		MongoDB: AppMongoDB{
			BookingAttemptCollection: utils.GetEnvString("MONGODB_BOOKING_ATTEMPT_COLLECTION", constvars.MongoCollectionBookingAttempts),
		},
	}
}
