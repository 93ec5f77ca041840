package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	LoginSuccessMessage      = "successfully login"
	SignupSuccessMessage     = "successfully signup"
	LogoutSuccessMessage     = "successfully logout"
	VerifyUserSuccessMessage = "user verified successfully"

	// Users
	GetProfileSuccessMessage           = "get profile successfully"
	UpdateProfileSuccessMessage        = "profile updated successfully"
	UploadProfilePictureSuccessMessage = "profile picture uploaded successfully"
	GetUsersSuccessMessage             = "get users successfully"
	DeleteUserSuccessMessage           = "user deleted successfully"

	// Doctors
	GetDoctorSuccessMessage           = "get doctor successfully"
	GetDoctorsSuccessMessage          = "get doctors successfully"
	ApplyDoctorSuccessMessage         = "doctor application submitted successfully"
	UpdateDoctorProfileSuccessMessage = "doctor profile updated successfully"
	UpdateDoctorStatusSuccessMessage  = "doctor status updated successfully"

	// Appointments
	GetAppointmentsSuccessMessage = "get appointments successfully"
	GetBookedSlotsSuccessMessage  = "get booked slots successfully"
	SlotAvailableMessage          = "Appointment slot is available"
	AppointmentBookedMessage      = "Appointment booked successfully"

	// Notifications
	MarkNotificationsSeenSuccessMessage = "all notifications marked as seen"
	DeleteNotificationsSuccessMessage   = "all seen notifications deleted"

	// Analytics
	GetDashboardAnalyticsSuccessMessage = "get dashboard analytics successfully"
)
