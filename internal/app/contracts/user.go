package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session, userID string) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.Profile, error)
	UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error)
	GetUsers(ctx context.Context, session *models.Session) ([]responses.Profile, error)
	DeleteUser(ctx context.Context, session *models.Session, userID string) error
}

type NotificationUsecase interface {
	MarkAllSeen(ctx context.Context, session *models.Session) (*responses.Profile, error)
	DeleteAllSeen(ctx context.Context, session *models.Session) (*responses.Profile, error)
}

type AnalyticsUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) (*responses.DashboardAnalytics, error)
}
