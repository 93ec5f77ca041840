package booking

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"time"
)

// flowStore keeps flows in redis, one per session and doctor.
type flowStore struct {
	redis    contracts.RedisRepository
	ttl      time.Duration
	staleAge time.Duration
	now      func() time.Time
}

func flowKey(sessionID, doctorID string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingFlowFormat, sessionID, doctorID)
}

// load returns the stored flow or a fresh Idle one. A flow left in Booking for longer than
// staleAge lost its outcome and is loaded as Failed.
func (s *flowStore) load(ctx context.Context, sessionID, doctorID string) (*Flow, error) {
	record := new(models.BookingFlowRecord)
	found, err := s.redis.GetInto(ctx, flowKey(sessionID, doctorID), record)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewFlow(), nil
	}

	flow := FlowFromRecord(record)
	if flow.State == FlowBooking && s.now().Sub(flow.UpdatedAt) > s.staleAge {
		flow.Abandon()
	}
	return flow, nil
}

func (s *flowStore) save(ctx context.Context, sessionID, doctorID string, flow *Flow) error {
	flow.UpdatedAt = s.now()
	return s.redis.Set(ctx, flowKey(sessionID, doctorID), flow.ToRecord(sessionID, doctorID), s.ttl)
}
