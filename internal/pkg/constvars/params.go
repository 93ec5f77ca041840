package constvars

const (
	URLParamUserID   = "user_id"
	URLParamDoctorID = "doctor_id"
)

const (
	URLQueryParamView = "view"
)

const (
	QueryParamViewDoctor = "doctor"
)

const (
	FormFieldProfilePicture = "profile_picture"
)
