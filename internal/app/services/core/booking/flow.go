package booking

import (
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"
)

type FlowState string

const (
	FlowIdle                 FlowState = "idle"
	FlowCheckingAvailability FlowState = "checking_availability"
	FlowAvailable            FlowState = "available"
	FlowUnavailable          FlowState = "unavailable"
	FlowBooking              FlowState = "booking"
	FlowBooked               FlowState = "booked"
	FlowFailed               FlowState = "failed"
)

// Flow tracks one user's way from picking a slot to a confirmed booking with one doctor.
// Unavailable, Booked and Failed are terminal; only a new availability check leaves them.
type Flow struct {
	State          FlowState
	Date           string
	Time           string
	IdempotencyKey string
	UpdatedAt      time.Time
}

func NewFlow() *Flow {
	return &Flow{State: FlowIdle}
}

func FlowFromRecord(record *models.BookingFlowRecord) *Flow {
	if record == nil || record.State == "" {
		return NewFlow()
	}
	return &Flow{
		State:          FlowState(record.State),
		Date:           record.Date,
		Time:           record.Time,
		IdempotencyKey: record.IdempotencyKey,
		UpdatedAt:      record.UpdatedAt,
	}
}

func (f *Flow) ToRecord(sessionID, doctorID string) *models.BookingFlowRecord {
	return &models.BookingFlowRecord{
		SessionID:      sessionID,
		DoctorID:       doctorID,
		State:          string(f.State),
		Date:           f.Date,
		Time:           f.Time,
		IdempotencyKey: f.IdempotencyKey,
		UpdatedAt:      f.UpdatedAt,
	}
}

func (f *Flow) IsTerminal() bool {
	switch f.State {
	case FlowUnavailable, FlowBooked, FlowFailed:
		return true
	}
	return false
}

func (f *Flow) sameSlot(date, hhmm string) bool {
	return f.Date == date && f.Time == hhmm
}

// CanBook reports whether the slot was checked and found available.
func (f *Flow) CanBook(date, hhmm string) bool {
	return f.State == FlowAvailable && f.sameSlot(date, hhmm)
}

func (f *Flow) transitionError(to FlowState) error {
	return exceptions.ErrBookingFlowTransition(nil, string(f.State), string(to))
}

// BeginCheck restarts the flow for a new slot. A failed booking of the same slot keeps its
// idempotency key so a retry cannot create a second appointment.
func (f *Flow) BeginCheck(date, hhmm string) error {
	if f.State == FlowBooking {
		return f.transitionError(FlowCheckingAvailability)
	}
	if !(f.State == FlowFailed && f.sameSlot(date, hhmm)) {
		f.IdempotencyKey = ""
	}
	f.State = FlowCheckingAvailability
	f.Date = date
	f.Time = hhmm
	return nil
}

func (f *Flow) ResolveCheck(available bool) error {
	if f.State != FlowCheckingAvailability {
		return f.transitionError(FlowAvailable)
	}
	if available {
		f.State = FlowAvailable
	} else {
		f.State = FlowUnavailable
	}
	return nil
}

func (f *Flow) BeginBooking(date, hhmm string) error {
	if !f.CanBook(date, hhmm) {
		return exceptions.ErrCheckAvailabilityFirst(fmt.Errorf("flow is %s for %s %s, booking %s %s", f.State, f.Date, f.Time, date, hhmm))
	}
	if f.IdempotencyKey == "" {
		f.IdempotencyKey = utils.GenerateIdempotencyKey()
	}
	f.State = FlowBooking
	return nil
}

func (f *Flow) ResolveBooking(booked bool) error {
	if f.State != FlowBooking {
		return f.transitionError(FlowBooked)
	}
	if booked {
		f.State = FlowBooked
	} else {
		f.State = FlowFailed
	}
	return nil
}

// Abandon marks a booking whose outcome never came back as failed.
func (f *Flow) Abandon() {
	if f.State == FlowBooking {
		f.State = FlowFailed
	}
}

func (f *Flow) Reset() {
	*f = Flow{State: FlowIdle}
}
