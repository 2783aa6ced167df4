package controllers

import (
	"context"
	"errors"
	"io"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
	InternalConfig      *config.InternalConfig
}

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase, internalConfig *config.InternalConfig) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
		InternalConfig:      internalConfig,
	}
}

// RunConsultation accepts an optional voice recording and an optional image as multipart fields.
// Both are stored as per-request temp files and removed once the reply is built.
func (ctrl *ConsultationController) RunConsultation(w http.ResponseWriter, r *http.Request) {
	bodyLimit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	err := r.ParseMultipartForm(bodyLimit)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	audioPath, err := ctrl.saveUpload(r, constvars.MultipartFieldAudio)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer removeUpload(audioPath)

	imagePath, err := ctrl.saveUpload(r, constvars.MultipartFieldImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer removeUpload(imagePath)

	request := &requests.Consultation{
		AudioPath: audioPath,
		ImagePath: imagePath,
	}
	if session := sessionFromContext(r.Context()); session != nil {
		request.Username = session.Username
		request.SessionID = session.SessionID
	}

	timeout := time.Duration(ctrl.InternalConfig.Consultant.TimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response := ctrl.ConsultationUsecase.RunConsultation(ctx, request)
	if response.ReplyAudioURL == nil && response.ReplyAudioPath != nil {
		localURL := utils.BuildEndpointPath(
			ctrl.InternalConfig.App.EndpointPrefix,
			ctrl.InternalConfig.App.Version,
			constvars.ResourceConsultations,
			"audio",
			filepath.Base(*response.ReplyAudioPath),
		)
		response.ReplyAudioURL = &localURL
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationSuccessMessage, response)
}

func (ctrl *ConsultationController) GetReplyAudio(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, constvars.URLParamFileName)
	if !utils.IsReplyAudioFileName(fileName) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFileName(nil, fileName))
		return
	}

	filePath := filepath.Join(ctrl.InternalConfig.App.MediaDir, fileName)
	if !utils.IsNonEmptyFile(filePath) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFileName(os.ErrNotExist, fileName))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEAudioMPEG)
	http.ServeFile(w, r, filePath)
}

// saveUpload returns "" when the field was not sent.
func (ctrl *ConsultationController) saveUpload(r *http.Request, fieldName string) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}

	file, _, err := r.FormFile(fieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", exceptions.ErrCannotSaveUpload(err, fieldName)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", exceptions.ErrCannotSaveUpload(err, fieldName)
	}

	uploadsDir := filepath.Join(ctrl.InternalConfig.App.MediaDir, constvars.UploadsDirName)
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", exceptions.ErrCannotSaveUpload(err, fieldName)
	}

	uploadPath := filepath.Join(uploadsDir, utils.GenerateUploadFileName(mimetype.Detect(data).Extension()))
	if err := os.WriteFile(uploadPath, data, 0o644); err != nil {
		return "", exceptions.ErrCannotSaveUpload(err, fieldName)
	}

	ctrl.Log.Debug("ConsultationController.saveUpload stored upload",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingFilePathKey, uploadPath),
	)
	return uploadPath, nil
}

func removeUpload(path string) {
	if path != "" {
		os.Remove(path)
	}
}
