package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowHappyPath(t *testing.T) {
	flow := NewFlow()

	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	assert.Equal(t, FlowCheckingAvailability, flow.State)

	require.NoError(t, flow.ResolveCheck(true))
	assert.Equal(t, FlowAvailable, flow.State)
	assert.True(t, flow.CanBook("2025-03-05", "10:30"))

	require.NoError(t, flow.BeginBooking("2025-03-05", "10:30"))
	assert.Equal(t, FlowBooking, flow.State)
	assert.NotEmpty(t, flow.IdempotencyKey)

	require.NoError(t, flow.ResolveBooking(true))
	assert.Equal(t, FlowBooked, flow.State)
	assert.True(t, flow.IsTerminal())
}

func TestFlowUnavailableIsTerminal(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.BeginCheck("2025-03-05", "10:15"))
	require.NoError(t, flow.ResolveCheck(false))

	assert.Equal(t, FlowUnavailable, flow.State)
	assert.True(t, flow.IsTerminal())
	assert.Error(t, flow.BeginBooking("2025-03-05", "10:15"))
	assert.Error(t, flow.ResolveCheck(true))
}

func TestFlowBookingRequiresCheckedSlot(t *testing.T) {
	flow := NewFlow()
	assert.Error(t, flow.BeginBooking("2025-03-05", "10:30"))

	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	require.NoError(t, flow.ResolveCheck(true))

	err := flow.BeginBooking("2025-03-05", "11:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking 2025-03-05 11:00")
	assert.Equal(t, FlowAvailable, flow.State)
}

func TestFlowNoCheckWhileBooking(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	require.NoError(t, flow.ResolveCheck(true))
	require.NoError(t, flow.BeginBooking("2025-03-05", "10:30"))

	assert.Error(t, flow.BeginCheck("2025-03-05", "11:00"))
	assert.Equal(t, FlowBooking, flow.State)
}

func TestFlowRetryAfterFailureKeepsIdempotencyKey(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	require.NoError(t, flow.ResolveCheck(true))
	require.NoError(t, flow.BeginBooking("2025-03-05", "10:30"))
	key := flow.IdempotencyKey
	require.NoError(t, flow.ResolveBooking(false))
	assert.Equal(t, FlowFailed, flow.State)

	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	require.NoError(t, flow.ResolveCheck(true))
	require.NoError(t, flow.BeginBooking("2025-03-05", "10:30"))
	assert.Equal(t, key, flow.IdempotencyKey)

	require.NoError(t, flow.ResolveBooking(false))
	require.NoError(t, flow.BeginCheck("2025-03-05", "11:00"))
	assert.Empty(t, flow.IdempotencyKey)
}

func TestFlowRecordRoundTrip(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.BeginCheck("2025-03-05", "10:30"))
	require.NoError(t, flow.ResolveCheck(true))

	record := flow.ToRecord("s1", "d1")
	assert.Equal(t, "s1", record.SessionID)
	assert.Equal(t, "d1", record.DoctorID)
	assert.Equal(t, "available", record.State)

	restored := FlowFromRecord(record)
	assert.True(t, restored.CanBook("2025-03-05", "10:30"))
	assert.Equal(t, FlowIdle, FlowFromRecord(nil).State)
}

func TestFlowAbandonAndReset(t *testing.T) {
	flow := &Flow{State: FlowBooking, Date: "2025-03-05", Time: "10:30", IdempotencyKey: "k"}
	flow.Abandon()
	assert.Equal(t, FlowFailed, flow.State)
	assert.Equal(t, "k", flow.IdempotencyKey)

	flow.Reset()
	assert.Equal(t, FlowIdle, flow.State)
	assert.Empty(t, flow.Date)
}
