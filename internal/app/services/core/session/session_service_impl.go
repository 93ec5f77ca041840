package session

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = newSessionService(redisRepository, internalConfig, logger)
	})
	return sessionServiceInstance
}

func newSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *sessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}

func (svc *sessionService) lifetime() time.Duration {
	hours := svc.InternalConfig.Session.ExpTimeInHour
	if hours <= 0 {
		hours = svc.InternalConfig.JWT.ExpTimeInHour
	}
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// Create stores a new session and returns the signed token the browser keeps.
func (svc *sessionService) Create(ctx context.Context, session *models.Session) (string, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	lifetime := svc.lifetime()
	session.SessionID = uuid.NewString()
	session.ExpiresAt = svc.now().Add(lifetime)

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, lifetime)
	if err != nil {
		svc.Log.Error("sessionService.Create error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.InternalConfig.JWT.Secret, int(lifetime/time.Hour))
	if err != nil {
		svc.Log.Error("sessionService.Create error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTokenGenerate(err)
	}

	svc.Log.Info("sessionService.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return token, nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	session := new(models.Session)
	found, err := svc.RedisRepository.GetInto(ctx, sessionKey(sessionID), session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrSessionInvalid(errors.New("session not found"))
	}
	if session.IsExpired(svc.now()) {
		return nil, exceptions.ErrSessionInvalid(errors.New("session expired"))
	}
	return session, nil
}

// Save writes the session back without extending its lifetime.
func (svc *sessionService) Save(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(svc.now())
	if session.ExpiresAt.IsZero() || ttl <= 0 {
		return exceptions.ErrSessionInvalid(errors.New("session expired"))
	}
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (svc *sessionService) Delete(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
