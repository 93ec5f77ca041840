package auth

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient contracts.AuthBackendClient
	SessionService    contracts.SessionService
	ProfilePresenter  contracts.ProfilePresenter
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionService contracts.SessionService,
	profilePresenter contracts.ProfilePresenter,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthBackendClient: authBackendClient,
			SessionService:    sessionService,
			ProfilePresenter:  profilePresenter,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	message, err := uc.AuthBackendClient.Signup(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return message, nil
}

// Login signs in against the booking API and opens a gateway session holding its token.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	login, err := uc.AuthBackendClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session := &models.Session{BackendToken: login.Token}
	session.MergeUser(&login.User)

	token, err := uc.SessionService.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_in", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	return &responses.Login{
		Token: token,
		User:  *uc.ProfilePresenter.Present(ctx, &login.User),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.SessionService.Delete(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// VerifyUser reloads the user from the booking API and replaces the session's user fields and
// notification lists with it.
func (uc *authUsecase) VerifyUser(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.VerifyUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.AuthBackendClient.Verify(ctx, session.BackendToken, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.VerifyUser error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.MergeUser(user)
	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.VerifyUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ProfilePresenter.Present(ctx, user), nil
}
