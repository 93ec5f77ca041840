package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"oneof":         "must be one of [%s]",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number":  "phone number must be in international format, e.g. +923001234567",
	"clock":         "must be a time in HH:mm format",
	"calendar_date": "must be a date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error kinds surfaced to the browser so it can pick the right notification
const (
	ErrorKindValidation           = "ValidationError"
	ErrorKindAvailabilityConflict = "AvailabilityConflict"
	ErrorKindNetwork              = "NetworkError"
	ErrorKindUnknown              = "UnknownError"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSlotUnavailable               = "Slot unavailable"
	ErrClientOutsideAvailabilityWindow     = "Doctor is not available at the selected time"
	ErrClientCheckAvailabilityFirst        = "please check availability for this slot before booking"
	ErrClientSlotBeingBooked               = "this slot is being booked by someone else, please try again"
	ErrClientBackendUnreachable            = "the booking service is unreachable, please try again"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientDateRequired                  = "Date is required"
	ErrClientTimeRequired                  = "Time is required"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevUnauthorized               = "unauthorized access"
	ErrDevRoleNotAllowed             = "role %s is not allowed to access this resource"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerProcess              = "failed to process request on server"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSessionData         = "session data missing from context"
	ErrDevRateLimited                = "client %s exceeded the request rate"
	ErrDevPanicRecovered             = "panic recovered while serving request"

	// Auth
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthInvalidSession        = "session not found or expired"

	// Booking
	ErrDevSlotConflict          = "requested slot conflicts with an existing booking"
	ErrDevSlotOutsideWindow     = "requested slot is outside the doctor availability window"
	ErrDevBookingFlowTransition = "invalid booking flow transition from %s to %s"
	ErrDevBookingFlowSlot       = "booking requested for a slot that was not checked"
	ErrDevBookingLockNotAcquire = "booking lock already held for slot"
	ErrDevInvalidClock          = "invalid clock value %q"
	ErrDevInvalidCalendarDate   = "invalid calendar date %q"

	// Backend
	ErrDevBackendRequestFailed  = "backend %s request failed"
	ErrDevBackendRejected       = "backend %s rejected the request"
	ErrDevBackendDecodeResponse = "failed to decode backend %s response"

	// Redis
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "no data found in redis for key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Mongo DB
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToAggregate      = "failed to aggregate documents"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object url in bucket %s"
)
