package responses

import (
	"strconv"
	"strings"
)

// Amount is a number the booking API sometimes sends as a JSON string.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*a = Amount(value)
	return nil
}

type Doctor struct {
	ID                 string `json:"_id"`
	UserID             string `json:"userId"`
	Prefix             string `json:"prefix"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
	Website            string `json:"website"`
	Address            string `json:"address"`
	Specialization     string `json:"specialization"`
	Experience         Amount `json:"experience"`
	FeePerConsultation Amount `json:"feePerConsultation"`
	FromTime           string `json:"fromTime"`
	ToTime             string `json:"toTime"`
	Status             string `json:"status"`
}

// DoctorCard is a doctor with every field already formatted for display.
type DoctorCard struct {
	ID                  string `json:"id"`
	UserID              string `json:"user_id"`
	DisplayName         string `json:"display_name"`
	Email               string `json:"email"`
	MaskedPhoneNumber   string `json:"masked_phone_number"`
	Website             string `json:"website,omitempty"`
	Address             string `json:"address"`
	Specialization      string `json:"specialization"`
	Experience          string `json:"experience"`
	Fee                 string `json:"fee"`
	Timings             string `json:"timings"`
	FromTime            string `json:"from_time"`
	ToTime              string `json:"to_time"`
	ConsultationMinutes int    `json:"consultation_minutes"`
	ConsultationLabel   string `json:"consultation_label"`
	Status              string `json:"status"`
}
