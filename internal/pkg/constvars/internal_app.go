package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleUser   = "user"
)

const (
	ResourceAuth          = "auth"
	ResourceUsers         = "users"
	ResourceDoctors       = "doctors"
	ResourceAppointments  = "appointments"
	ResourceNotifications = "notifications"
	ResourceAnalytics     = "analytics"
)

const (
	DoctorStatusPending  = "pending"
	DoctorStatusApproved = "approved"
	DoctorStatusRejected = "rejected"
)

const (
	RedirectUserAppointments   = "/appointments"
	RedirectDoctorAppointments = "/doctors/appointments"
)

const (
	RedisKeySessionPrefix      = "session:"
	RedisKeyBookingFlowFormat  = "booking:flow:%s:%s"
	RedisKeyBookingLockFormat  = "booking:lock:%s:%s:%s"
	RedisKeyAnalyticsDashboard = "analytics:dashboard"
)

const (
	MongoCollectionBookingAttempts = "booking_attempts"
)

const (
	EventTypeAppointmentBooked = "appointment.booked"
)

const (
	ProfilePictureObjectPrefix = "profile_picture"
)
