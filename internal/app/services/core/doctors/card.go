package doctors

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"strconv"
	"strings"
)

// NewDoctorCard formats a doctor for listing: masked phone, 12-hour timings, grouped fee.
func NewDoctorCard(doctor *responses.Doctor) responses.DoctorCard {
	fromTime, _ := utils.ParseClock(doctor.FromTime)
	toTime, _ := utils.ParseClock(doctor.ToTime)

	return responses.DoctorCard{
		ID:                  doctor.ID,
		UserID:              doctor.UserID,
		DisplayName:         strings.TrimSpace(doctor.Prefix + " " + doctor.FullName),
		Email:               doctor.Email,
		MaskedPhoneNumber:   utils.MaskPhoneNumber(doctor.PhoneNumber),
		Website:             doctor.Website,
		Address:             doctor.Address,
		Specialization:      doctor.Specialization,
		Experience:          formatExperience(float64(doctor.Experience)),
		Fee:                 utils.FormatThousandSeparator(float64(doctor.FeePerConsultation)),
		Timings:             formatTimings(fromTime, toTime),
		FromTime:            fromTime,
		ToTime:              toTime,
		ConsultationMinutes: constvars.ConsultationDurationMinutes,
		ConsultationLabel:   constvars.ConsultationDurationLabel,
		Status:              doctor.Status,
	}
}

func NewDoctorCards(doctors []responses.Doctor) []responses.DoctorCard {
	cards := make([]responses.DoctorCard, 0, len(doctors))
	for i := range doctors {
		cards = append(cards, NewDoctorCard(&doctors[i]))
	}
	return cards
}

func formatExperience(years float64) string {
	if years == 1 {
		return "1 Year"
	}
	return strconv.FormatFloat(years, 'f', -1, 64) + " Years"
}

func formatTimings(fromTime, toTime string) string {
	if fromTime == "" || toTime == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", utils.To12HourDisplay(fromTime), utils.To12HourDisplay(toTime))
}
