package contracts

import (
	"context"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.SessionState, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, session *models.Session) (*responses.SessionState, error)
	// HandleAuthAction dispatches the single auth form on its action field.
	HandleAuthAction(ctx context.Context, request *requests.AuthAction) (message string, data interface{}, err error)
}
