package constvars

// Paths on the remote booking API, relative to BACKEND_BASE_URL.
const (
	BackendPathLogin  = "/auth/login"
	BackendPathSignup = "/auth/signup"
	BackendPathVerify = "/auth/verify/%s"

	BackendPathUsers = "/user"
	BackendPathUser  = "/user/%s"

	BackendPathDoctors         = "/doctor"
	BackendPathApprovedDoctors = "/doctor/approved"
	BackendPathDoctor          = "/doctor/%s"
	BackendPathApplyDoctor     = "/doctor/apply"
	BackendPathDoctorStatus    = "/doctor/%s/status"

	BackendPathBookedSlots       = "/appointment/booked/%s"
	BackendPathCheckAvailability = "/appointment/check-availability"
	BackendPathBookAppointment   = "/appointment/book"
	BackendPathUserAppointments  = "/appointment/user/%s"
	BackendPathDoctorAppointment = "/appointment/doctor/%s"

	BackendPathNotificationsSeen = "/notification/seen/%s"
	BackendPathNotifications     = "/notification/%s"
)

const (
	BackendResourceAuth         = "auth"
	BackendResourceUser         = "user"
	BackendResourceDoctor       = "doctor"
	BackendResourceAppointment  = "appointment"
	BackendResourceNotification = "notification"
)
