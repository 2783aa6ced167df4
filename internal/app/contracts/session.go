package contracts

import (
	"context"
	"medisense-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, username string, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
