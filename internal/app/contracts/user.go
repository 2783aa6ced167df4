package contracts

import (
	"context"
	"medisense-service/internal/app/models"
)

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
