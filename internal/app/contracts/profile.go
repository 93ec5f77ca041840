package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/responses"
)

type ProfilePresenter interface {
	Present(ctx context.Context, user *responses.User) *responses.Profile
}
