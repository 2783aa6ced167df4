package session

import (
	"context"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		now:             time.Now,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}

func (svc *sessionService) CreateSession(ctx context.Context, username string, ttl time.Duration) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	session := &models.Session{SessionID: utils.GenerateSessionID()}
	session.Login(username, svc.now(), ttl)

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session, err := svc.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.LoggedIn || session.IsExpired(svc.now()) {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
