package requests

// CheckAvailability is what the browser sends when the user asks whether a slot is open.
// Date and time are loosely typed so the builder can report the missing field by name.
type CheckAvailability struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type BookAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type GetAppointments struct {
	UserID string
	View   string `validate:"omitempty,oneof=user doctor"`
}

// BackendCheckAvailability is the body of POST appointment/check-availability.
type BackendCheckAvailability struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BackendBookAppointment is the body of POST appointment/book. DoctorInfo and UserInfo are
// the snapshots the remote API stores alongside the booking.
type BackendBookAppointment struct {
	DoctorID   string      `json:"doctorId"`
	UserID     string      `json:"userId"`
	DoctorInfo interface{} `json:"doctorInfo"`
	UserInfo   interface{} `json:"userInfo"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
}
