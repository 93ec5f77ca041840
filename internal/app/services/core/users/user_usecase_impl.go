package users

import (
	"context"
	"errors"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserBackendClient contracts.UserBackendClient
	SessionService    contracts.SessionService
	MinioStorage      contracts.Storage
	ProfilePresenter  contracts.ProfilePresenter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewUserUsecase(
	userBackendClient contracts.UserBackendClient,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	profilePresenter contracts.ProfilePresenter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserBackendClient: userBackendClient,
			SessionService:    sessionService,
			MinioStorage:      minioStorage,
			ProfilePresenter:  profilePresenter,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return userUsecaseInstance
}

// GetProfile returns the session user's profile, or any user's profile for an admin.
func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session, userID string) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		userID = session.UserID
	}
	if userID != session.UserID && !session.IsAdmin {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("profile belongs to another user"), session.Role())
	}

	user, err := uc.UserBackendClient.GetUser(ctx, session.BackendToken, userID)
	if err != nil {
		uc.Log.Error("userUsecase.GetProfile error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ProfilePresenter.Present(ctx, user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	request.UserID = session.UserID
	user, err := uc.UserBackendClient.UpdateUser(ctx, session.BackendToken, request)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.mergeIntoSession(ctx, session, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ProfilePresenter.Present(ctx, user), nil
}

// UploadProfilePicture stores the image in object storage and records its object name on the user.
func (uc *userUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	data, err := io.ReadAll(request.File)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	contentType, err := utils.DetectImageContentType(data)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfilePicture rejected file content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	extension := strings.ToLower(filepath.Ext(request.FileHeader.Filename))
	objectName := utils.GenerateFileName(constvars.ProfilePictureObjectPrefix, session.UserID, extension)
	bucketName := uc.InternalConfig.Minio.BucketName

	_, err = uc.MinioStorage.UploadObject(ctx, &requests.UploadObject{
		BucketName:  bucketName,
		ObjectName:  objectName,
		Data:        data,
		ContentType: contentType,
	})
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfilePicture error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserBackendClient.UpdateProfilePicture(ctx, session.BackendToken, session.UserID, objectName)
	if err != nil {
		uc.Log.Error("userUsecase.UploadProfilePicture error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.mergeIntoSession(ctx, session, user)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UploadProfilePicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadProfilePicture{
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func (uc *userUsecase) GetUsers(ctx context.Context, session *models.Session) ([]responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role())
	}

	users, err := uc.UserBackendClient.GetUsers(ctx, session.BackendToken)
	if err != nil {
		uc.Log.Error("userUsecase.GetUsers error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profiles := make([]responses.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *uc.ProfilePresenter.Present(ctx, &users[i]))
	}

	uc.Log.Info("userUsecase.GetUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(profiles)),
	)
	return profiles, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.IsAdmin {
		return exceptions.ErrNotMatchRoleType(nil, session.Role())
	}
	if userID == session.UserID {
		return exceptions.ErrNotMatchRoleType(errors.New("admins cannot delete themselves"), session.Role())
	}

	err := uc.UserBackendClient.DeleteUser(ctx, session.BackendToken, userID)
	if err != nil {
		uc.Log.Error("userUsecase.DeleteUser error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, "user_deleted", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (uc *userUsecase) mergeIntoSession(ctx context.Context, session *models.Session, user *responses.User) error {
	session.MergeUser(user)
	err := uc.SessionService.Save(ctx, session)
	if err != nil {
		uc.Log.Error("userUsecase.mergeIntoSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
