package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
)

type EventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, event *requests.AppointmentBookedEvent) error
}
