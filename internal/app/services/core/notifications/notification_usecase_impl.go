package notifications

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	NotificationBackendClient contracts.NotificationBackendClient
	SessionService            contracts.SessionService
	ProfilePresenter          contracts.ProfilePresenter
	Log                       *zap.Logger
}

func NewNotificationUsecase(
	notificationBackendClient contracts.NotificationBackendClient,
	sessionService contracts.SessionService,
	profilePresenter contracts.ProfilePresenter,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationBackendClient: notificationBackendClient,
			SessionService:            sessionService,
			ProfilePresenter:          profilePresenter,
			Log:                       logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) MarkAllSeen(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	return uc.apply(ctx, session, "notificationUsecase.MarkAllSeen", uc.NotificationBackendClient.MarkAllSeen)
}

func (uc *notificationUsecase) DeleteAllSeen(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	return uc.apply(ctx, session, "notificationUsecase.DeleteAllSeen", uc.NotificationBackendClient.DeleteAllSeen)
}

// apply runs a notification call and replaces both notification lists in the session with the
// ones the booking API returns.
func (uc *notificationUsecase) apply(
	ctx context.Context,
	session *models.Session,
	operation string,
	call func(ctx context.Context, token, userID string) (*responses.User, error),
) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := call(ctx, session.BackendToken, session.UserID)
	if err != nil {
		uc.Log.Error(operation+" error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.MergeNotifications(user.SeenNotifications, user.UnseenNotifications)
	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		uc.Log.Error(operation+" error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("unseen_count", len(session.UnseenNotifications)),
	)
	return uc.ProfilePresenter.Present(ctx, session.Snapshot()), nil
}
