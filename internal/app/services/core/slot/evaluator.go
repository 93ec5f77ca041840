package slot

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"strings"
)

const statusCancelled = "cancelled"

// NewSlot builds a consultation slot with the fixed consultation length.
func NewSlot(date, hhmm string) Slot {
	return Slot{Date: date, Time: hhmm, DurationMinutes: constvars.ConsultationDurationMinutes}
}

func parseClock(value string) (clock, bool) {
	minutes, err := utils.ClockToMinutes(value)
	if err != nil {
		return clock{}, false
	}
	return clock{H: minutes / 60, M: minutes % 60}, true
}

func sameDate(a, b string) bool {
	normalizedA, errA := utils.ParseCalendarDate(a)
	normalizedB, errB := utils.ParseCalendarDate(b)
	if errA != nil || errB != nil {
		return false
	}
	return normalizedA == normalizedB
}

// overlaps reports whether the requested start falls inside the half-open range an existing
// booking occupies. Every booking lasts one fixed consultation. Ranges are minutes since midnight
// on the booking's own date and never roll over, so 23:45 does not block 00:05 the day after.
func overlaps(requested clock, existing clock) bool {
	start := existing.minutes()
	end := start + constvars.ConsultationDurationMinutes
	r := requested.minutes()
	return r >= start && r < end
}

func isCancelled(b BookedSlot) bool {
	return strings.EqualFold(strings.TrimSpace(b.Status), statusCancelled)
}

// FindConflict returns the first booking that blocks requested, or nil. Cancelled bookings
// and entries with an unparseable date or time never block.
func FindConflict(requested Slot, existing []BookedSlot) *BookedSlot {
	requestedStart, ok := parseClock(requested.Time)
	if !ok {
		return nil
	}

	for i := range existing {
		booked := existing[i]
		if isCancelled(booked) || !sameDate(requested.Date, booked.Date) {
			continue
		}
		bookedStart, ok := parseClock(booked.Time)
		if !ok {
			continue
		}
		if overlaps(requestedStart, bookedStart) {
			return &booked
		}
	}
	return nil
}

// IsSlotFree reports whether no existing booking on the same date covers the requested start.
func IsSlotFree(requested Slot, existing []BookedSlot) bool {
	return FindConflict(requested, existing) == nil
}

// Contains reports whether the slot start lies within the window. An empty or malformed window
// places no restriction.
func (w AvailabilityWindow) Contains(s Slot) bool {
	if strings.TrimSpace(w.FromTime) == "" || strings.TrimSpace(w.ToTime) == "" {
		return true
	}
	if _, ok := parseClock(w.FromTime); !ok {
		return true
	}
	if _, ok := parseClock(w.ToTime); !ok {
		return true
	}
	return utils.IsTimeWithinRange(s.Time, w.FromTime, w.ToTime)
}

// Evaluate runs the full local pre-check: request shape, working hours, then existing bookings.
// It is advisory; the booking API has the final word.
func Evaluate(requested Slot, window AvailabilityWindow, existing []BookedSlot) Verdict {
	if _, err := utils.ParseCalendarDate(requested.Date); err != nil {
		return Verdict{Free: false, Reason: ReasonInvalidRequest}
	}
	if _, ok := parseClock(requested.Time); !ok {
		return Verdict{Free: false, Reason: ReasonInvalidRequest}
	}

	if !window.Contains(requested) {
		return Verdict{Free: false, Reason: ReasonOutsideWindow}
	}

	if conflict := FindConflict(requested, existing); conflict != nil {
		return Verdict{Free: false, Reason: ReasonConflict, Conflict: conflict}
	}

	return Verdict{Free: true, Reason: ReasonFree}
}
