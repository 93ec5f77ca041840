package requests

import "time"

// AppointmentBookedEvent is published after the remote API confirms a booking.
type AppointmentBookedEvent struct {
	EventType      string    `json:"event_type"`
	IdempotencyKey string    `json:"idempotency_key"`
	DoctorID       string    `json:"doctor_id"`
	UserID         string    `json:"user_id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	EndTime        string    `json:"end_time"`
	OccurredAt     time.Time `json:"occurred_at"`
}
