package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
}

func SanitizeApplyDoctorRequest(input *requests.ApplyDoctor) {
	input.Prefix = strings.TrimSpace(input.Prefix)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
	input.Website = strings.TrimSpace(input.Website)
	input.Address = strings.TrimSpace(input.Address)
	input.Specialization = capitalizeFirstLetter(strings.TrimSpace(input.Specialization))
	input.FromTime = strings.TrimSpace(input.FromTime)
	input.ToTime = strings.TrimSpace(input.ToTime)
}

func SanitizeCheckAvailabilityRequest(input *requests.CheckAvailability) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}
