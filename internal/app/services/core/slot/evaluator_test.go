package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSlotFree(t *testing.T) {
	existing := []BookedSlot{
		{Date: "2025-03-05", Time: "10:00"},
	}

	tests := []struct {
		name     string
		slot     Slot
		existing []BookedSlot
		free     bool
	}{
		{"start inside existing consultation", NewSlot("2025-03-05", "10:15"), existing, false},
		{"same start", NewSlot("2025-03-05", "10:00"), existing, false},
		{"one minute before end", NewSlot("2025-03-05", "10:29"), existing, false},
		{"exactly at end", NewSlot("2025-03-05", "10:30"), existing, true},
		{"before existing", NewSlot("2025-03-05", "09:45"), existing, true},
		{"other date", NewSlot("2025-03-06", "10:15"), existing, true},
		{"no bookings", NewSlot("2025-03-05", "10:15"), nil, true},
		{"equivalent date format", NewSlot("05-03-2025", "10:15"), existing, false},
		{"cancelled booking", NewSlot("2025-03-05", "10:15"), []BookedSlot{{Date: "2025-03-05", Time: "10:00", Status: "Cancelled"}}, true},
		{"malformed existing entry skipped", NewSlot("2025-03-05", "10:15"), []BookedSlot{{Date: "2025-03-05", Time: "ten"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.free, IsSlotFree(tt.slot, tt.existing))
		})
	}
}

func TestIsSlotFreeLateNightDoesNotRollOver(t *testing.T) {
	existing := []BookedSlot{{Date: "2025-03-05", Time: "23:45"}}

	assert.False(t, IsSlotFree(NewSlot("2025-03-05", "23:50"), existing))
	assert.True(t, IsSlotFree(NewSlot("2025-03-06", "00:05"), existing))
}

func TestIsSlotFreeExistingBookingKeepsFixedLength(t *testing.T) {
	existing := []BookedSlot{{Date: "2025-03-05", Time: "10:00"}}

	long := Slot{Date: "2025-03-05", Time: "10:45", DurationMinutes: 60}
	assert.True(t, IsSlotFree(long, existing))

	inside := Slot{Date: "2025-03-05", Time: "10:20", DurationMinutes: 60}
	assert.False(t, IsSlotFree(inside, existing))
}

func TestFindConflictReturnsBlockingBooking(t *testing.T) {
	existing := []BookedSlot{
		{Date: "2025-03-05", Time: "09:00"},
		{Date: "2025-03-05", Time: "10:00"},
	}

	conflict := FindConflict(NewSlot("2025-03-05", "10:10"), existing)
	require.NotNil(t, conflict)
	assert.Equal(t, "10:00", conflict.Time)
}

func TestAvailabilityWindowContains(t *testing.T) {
	window := AvailabilityWindow{FromTime: "09:00", ToTime: "17:00"}

	assert.True(t, window.Contains(NewSlot("2025-03-05", "09:00")))
	assert.True(t, window.Contains(NewSlot("2025-03-05", "16:45")))
	assert.False(t, window.Contains(NewSlot("2025-03-05", "17:00")))
	assert.False(t, window.Contains(NewSlot("2025-03-05", "08:30")))
	assert.True(t, AvailabilityWindow{}.Contains(NewSlot("2025-03-05", "03:00")), "missing window does not restrict")
}

func TestEvaluate(t *testing.T) {
	window := AvailabilityWindow{FromTime: "09:00", ToTime: "17:00"}
	existing := []BookedSlot{{Date: "2025-03-05", Time: "10:00"}}

	verdict := Evaluate(NewSlot("2025-03-05", "10:30"), window, existing)
	assert.True(t, verdict.Free)
	assert.Equal(t, ReasonFree, verdict.Reason)

	verdict = Evaluate(NewSlot("2025-03-05", "10:15"), window, existing)
	assert.False(t, verdict.Free)
	assert.Equal(t, ReasonConflict, verdict.Reason)
	require.NotNil(t, verdict.Conflict)

	verdict = Evaluate(NewSlot("2025-03-05", "18:00"), window, existing)
	assert.Equal(t, ReasonOutsideWindow, verdict.Reason)

	verdict = Evaluate(NewSlot("", "10:30"), window, existing)
	assert.Equal(t, ReasonInvalidRequest, verdict.Reason)

	verdict = Evaluate(NewSlot("2025-03-05", "half past ten"), window, existing)
	assert.Equal(t, ReasonInvalidRequest, verdict.Reason)
}
