package booking

import (
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"strings"
)

// normalizeSlot checks that date and time are present and brings them to "YYYY-MM-DD" and "HH:mm".
func normalizeSlot(date, hhmm string) (string, string, error) {
	if strings.TrimSpace(date) == "" {
		return "", "", exceptions.ErrBookingDateRequired(nil)
	}
	if strings.TrimSpace(hhmm) == "" {
		return "", "", exceptions.ErrBookingTimeRequired(nil)
	}

	normalizedDate, err := utils.ParseCalendarDate(date)
	if err != nil {
		return "", "", exceptions.ErrInvalidCalendarDate(err, date)
	}
	normalizedTime, err := utils.ParseClock(hhmm)
	if err != nil {
		return "", "", exceptions.ErrInvalidClock(err, hhmm)
	}
	return normalizedDate, normalizedTime, nil
}

func BuildAvailabilityPayload(doctorID, date, hhmm string) (*requests.BackendCheckAvailability, error) {
	normalizedDate, normalizedTime, err := normalizeSlot(date, hhmm)
	if err != nil {
		return nil, err
	}
	return &requests.BackendCheckAvailability{
		DoctorID: doctorID,
		Date:     normalizedDate,
		Time:     normalizedTime,
	}, nil
}

// BuildBookingPayload assembles the body of a booking call. The doctor and user snapshots are
// passed through as they are.
func BuildBookingPayload(doctorID, userID, date, hhmm string, doctorInfo, userInfo interface{}) (*requests.BackendBookAppointment, error) {
	normalizedDate, normalizedTime, err := normalizeSlot(date, hhmm)
	if err != nil {
		return nil, err
	}
	return &requests.BackendBookAppointment{
		DoctorID:   doctorID,
		UserID:     userID,
		DoctorInfo: doctorInfo,
		UserInfo:   userInfo,
		Date:       normalizedDate,
		Time:       normalizedTime,
	}, nil
}
