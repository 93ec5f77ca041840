package constvars

import "time"

const (
	ConsultationDurationMinutes = 30
	ConsultationDurationLabel   = "30 Minutes"
)

const (
	ClockLayout            = "15:04"
	ClockLayoutWithSeconds = "15:04:05"
	Clock12HourLayout      = "3:04 PM"
	CalendarDateLayout     = "2006-01-02"
	CalendarDateLayoutDMY  = "02-01-2006"
	DisplayDateLayout      = "02 Jan 2006"
)

const (
	BookingLockExpiration    = 15 * time.Second
	BookingFlowExpiration    = 30 * time.Minute
	AnalyticsCacheExpiration = 5 * time.Minute
	BackendRequestTimeout    = 10 * time.Second
	ControllerRequestTimeout = 15 * time.Second
)

const (
	BookingAttemptKindCheck = "check_availability"
	BookingAttemptKindBook  = "book_appointment"

	BookingOutcomeAvailable   = "available"
	BookingOutcomeUnavailable = "unavailable"
	BookingOutcomeBooked      = "booked"
	BookingOutcomeFailed      = "failed"
)
