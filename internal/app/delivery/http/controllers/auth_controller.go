package controllers

import (
	"context"
	"errors"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const authRequestTimeout = 10 * time.Second

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.RegisterUser)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeRegisterUserRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.RegisterUser(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginUserRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.LoginUser(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

// HandleAuthAction serves the single auth form, where the action field picks Login or Register.
func (ctrl *AuthController) HandleAuthAction(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AuthAction)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeAuthActionRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	message, response, err := ctrl.AuthUsecase.HandleAuthAction(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), authRequestTimeout)
	defer cancel()

	response, err := ctrl.AuthUsecase.LogoutUser(ctx, session)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, response)
}

// GetSession reports the caller's state; a missing or stale token is simply the logged-out state.
func (ctrl *AuthController) GetSession(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionMessage, session.ToState())
}

func (ctrl *AuthController) handleUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
