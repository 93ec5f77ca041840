package slot

// clock holds a wall time (hour and minute) with no date attached.
type clock struct {
	H int
	M int
}

func (c clock) minutes() int {
	return c.H*60 + c.M
}

// Slot is a requested consultation start. Date is "YYYY-MM-DD", Time is "HH:mm".
type Slot struct {
	Date            string
	Time            string
	DurationMinutes int
}

// BookedSlot is an existing booking as reported by the booking API.
type BookedSlot struct {
	Date   string
	Time   string
	Status string
}

// AvailabilityWindow is a doctor's working hours, inclusive start and exclusive end.
type AvailabilityWindow struct {
	FromTime string
	ToTime   string
}

type Reason string

const (
	ReasonFree           Reason = "free"
	ReasonConflict       Reason = "conflict"
	ReasonOutsideWindow  Reason = "outside_window"
	ReasonInvalidRequest Reason = "invalid_request"
)

// Verdict is the outcome of a local availability pre-check.
type Verdict struct {
	Free     bool
	Reason   Reason
	Conflict *BookedSlot
}
