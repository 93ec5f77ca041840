package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session) (token string, err error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}
