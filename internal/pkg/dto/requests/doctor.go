package requests

type ApplyDoctor struct {
	UserID             string  `json:"userId"`
	Prefix             string  `json:"prefix" validate:"required,oneof=Dr. Prof."`
	FullName           string  `json:"fullName" validate:"required,min=3,max=80"`
	Email              string  `json:"email" validate:"required,email"`
	PhoneNumber        string  `json:"phoneNumber" validate:"required,phone_number"`
	Website            string  `json:"website" validate:"omitempty,url"`
	Address            string  `json:"address" validate:"required"`
	Specialization     string  `json:"specialization" validate:"required"`
	Experience         int     `json:"experience" validate:"gte=0,lte=80"`
	FeePerConsultation float64 `json:"feePerConsultation" validate:"gt=0"`
	FromTime           string  `json:"fromTime" validate:"required,clock"`
	ToTime             string  `json:"toTime" validate:"required,clock"`
}

type UpdateDoctorStatus struct {
	DoctorID string `json:"-" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=pending approved rejected"`
}
