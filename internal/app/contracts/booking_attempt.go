package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type BookingAttemptRepository interface {
	Insert(ctx context.Context, attempt *models.BookingAttempt) error
	CountByOutcome(ctx context.Context) (map[string]int, error)
}
