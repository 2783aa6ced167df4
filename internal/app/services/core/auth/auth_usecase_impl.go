package auth

import (
	"context"
	"fmt"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/dto/responses"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.SessionState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	utils.SanitizeRegisterUserRequest(request)
	if request.Username == "" || request.Password == "" {
		return nil, exceptions.ErrCredentialsEmpty(nil)
	}

	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding user by username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Username:  request.Username,
		Password:  hashedPassword,
		CreatedAt: uc.now(),
	}

	// A concurrent registration can still win the race, the unique index turns it into the same duplicate error.
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	// Registration never logs the user in.
	state := (&models.Session{}).ToState()
	return &state, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	utils.SanitizeLoginUserRequest(request)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error finding user by username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Unknown user and wrong password are indistinguishable to the caller.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.LoginUser invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, user.Username, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.LoginUser{
		Token:   token,
		Session: session.ToState(),
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) (*responses.SessionState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.Logout()

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	state := session.ToState()
	return &state, nil
}

func (uc *authUsecase) HandleAuthAction(ctx context.Context, request *requests.AuthAction) (string, interface{}, error) {
	utils.SanitizeAuthActionRequest(request)

	switch request.Action {
	case constvars.AuthActionLogin:
		result, err := uc.LoginUser(ctx, &requests.LoginUser{
			Username: request.Username,
			Password: request.Password,
		})
		if err != nil {
			return "", nil, err
		}
		return constvars.LoginSuccessMessage, result, nil
	case constvars.AuthActionRegister:
		result, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Username: request.Username,
			Password: request.Password,
		})
		if err != nil {
			return "", nil, err
		}
		return constvars.RegisterSuccessMessage, result, nil
	default:
		return "", nil, exceptions.ErrInvalidAuthAction(fmt.Errorf("action %q", request.Action), request.Action)
	}
}
