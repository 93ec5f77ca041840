package responses

// BookedSlot is one entry of GET appointment/booked/{doctorId}.
type BookedSlot struct {
	ID     string `json:"_id,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status,omitempty"`
}

type BookedSlotDisplay struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	Range       string `json:"range"`
	Status      string `json:"status,omitempty"`
}

type Appointment struct {
	ID         string                 `json:"_id"`
	DoctorID   string                 `json:"doctorId"`
	UserID     string                 `json:"userId"`
	DoctorInfo map[string]interface{} `json:"doctorInfo"`
	UserInfo   map[string]interface{} `json:"userInfo"`
	Date       string                 `json:"date"`
	Time       string                 `json:"time"`
	Status     string                 `json:"status"`
}

type AvailabilityResult struct {
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	EndTime   string `json:"end_time"`
	Range     string `json:"range"`
	Available bool   `json:"available"`
	FlowState string `json:"flow_state"`
}

type BookAppointment struct {
	DoctorID       string      `json:"doctor_id"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Range          string      `json:"range"`
	FlowState      string      `json:"flow_state"`
	RedirectTo     string      `json:"redirect_to"`
	IdempotencyKey string      `json:"idempotency_key"`
	Appointment    interface{} `json:"appointment,omitempty"`
}
