package routers

import (
	"bytes"
	"context"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/delivery/http/controllers"
	"medisense-service/internal/app/delivery/http/middlewares"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/dto/responses"
	"medisense-service/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockConsultationUsecase struct {
	mock.Mock
}

func (m *MockConsultationUsecase) RunConsultation(ctx context.Context, request *requests.Consultation) *responses.Consultation {
	args := m.Called(ctx, request)
	return args.Get(0).(*responses.Consultation)
}

type consultationFixture struct {
	router         *chi.Mux
	usecase        *MockConsultationUsecase
	sessionService *MockSessionService
	internalConfig *config.InternalConfig
}

func setupConsultationRouter(t *testing.T, requiresLogin bool) *consultationFixture {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := newTestInternalConfig()
	internalConfig.App.MediaDir = t.TempDir()
	internalConfig.Consultant.RequiresLogin = requiresLogin

	f := &consultationFixture{
		usecase:        new(MockConsultationUsecase),
		sessionService: new(MockSessionService),
		internalConfig: internalConfig,
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, f.sessionService, internalConfig)
	consultationController := controllers.NewConsultationController(logger, f.usecase, internalConfig)

	f.router = chi.NewRouter()
	attachConsultationRoutes(f.router, middlewareInstance, consultationController)
	return f
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestConsultationRouter_RequiresSession(t *testing.T) {
	f := setupConsultationRouter(t, true)

	body, contentType := multipartBody(t, map[string][]byte{"audio": []byte("RIFF")})
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(constvars.HeaderContentType, contentType)
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	f.usecase.AssertNotCalled(t, "RunConsultation", mock.Anything, mock.Anything)
}

func TestConsultationRouter_RunConsultation(t *testing.T) {
	f := setupConsultationRouter(t, true)
	session := &models.Session{SessionID: "session-1", LoggedIn: true, Username: "alice"}
	f.sessionService.On("GetSession", mock.Anything, "session-1").Return(session, nil)

	replyPath := filepath.Join(f.internalConfig.App.MediaDir, utils.GenerateReplyAudioFileName())
	var seen *requests.Consultation
	f.usecase.On("RunConsultation", mock.Anything, mock.AnythingOfType("*requests.Consultation")).
		Run(func(args mock.Arguments) {
			seen = args.Get(1).(*requests.Consultation)
			assert.FileExists(t, seen.AudioPath)
			assert.FileExists(t, seen.ImagePath)
		}).
		Return(&responses.Consultation{
			Transcript:     "I have a headache",
			DoctorReply:    "With what I see, I think you have a tension headache.",
			ReplyAudioPath: &replyPath,
		}).Once()

	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
	body, contentType := multipartBody(t, map[string][]byte{"audio": []byte("RIFF0000WAVEfmt "), "image": jpeg})
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(constvars.HeaderContentType, contentType)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, "session-1"))
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Username)
	assert.Equal(t, "session-1", seen.SessionID)
	assert.Equal(t, ".jpg", filepath.Ext(seen.ImagePath))
	assert.NoFileExists(t, seen.AudioPath)
	assert.NoFileExists(t, seen.ImagePath)

	var envelopeBody struct {
		Success bool `json:"success"`
		Data    struct {
			Transcript    string  `json:"transcript"`
			DoctorReply   string  `json:"doctor_reply"`
			ReplyAudioURL *string `json:"reply_audio_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelopeBody))
	assert.True(t, envelopeBody.Success)
	assert.Equal(t, "I have a headache", envelopeBody.Data.Transcript)
	assert.Equal(t, "With what I see, I think you have a tension headache.", envelopeBody.Data.DoctorReply)
	require.NotNil(t, envelopeBody.Data.ReplyAudioURL)
	assert.Equal(t, "/api/v1/consultations/audio/"+filepath.Base(replyPath), *envelopeBody.Data.ReplyAudioURL)

	f.usecase.AssertExpectations(t)
}

func TestConsultationRouter_WithoutUploadsWhenGuardOff(t *testing.T) {
	f := setupConsultationRouter(t, false)

	f.usecase.On("RunConsultation", mock.Anything, mock.MatchedBy(func(r *requests.Consultation) bool {
		return r.AudioPath == "" && r.ImagePath == "" && r.Username == ""
	})).Return(&responses.Consultation{
		Transcript:  constvars.FallbackCouldNotCaptureVoice,
		DoctorReply: constvars.FallbackNoImageProvided,
	}).Once()

	body, contentType := multipartBody(t, map[string][]byte{})
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(constvars.HeaderContentType, contentType)
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var envelopeBody struct {
		Data struct {
			Transcript    string  `json:"transcript"`
			DoctorReply   string  `json:"doctor_reply"`
			ReplyAudioURL *string `json:"reply_audio_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelopeBody))
	assert.Equal(t, constvars.FallbackCouldNotCaptureVoice, envelopeBody.Data.Transcript)
	assert.Equal(t, constvars.FallbackNoImageProvided, envelopeBody.Data.DoctorReply)
	assert.Nil(t, envelopeBody.Data.ReplyAudioURL)
	f.usecase.AssertExpectations(t)
}

func TestConsultationRouter_KeepsPresignedURL(t *testing.T) {
	f := setupConsultationRouter(t, false)

	replyPath := filepath.Join(f.internalConfig.App.MediaDir, utils.GenerateReplyAudioFileName())
	presignedURL := "https://minio.local/replies/reply.mp3?X-Amz-Signature=abc"
	f.usecase.On("RunConsultation", mock.Anything, mock.Anything).Return(&responses.Consultation{
		Transcript:     "hi",
		DoctorReply:    "hello",
		ReplyAudioPath: &replyPath,
		ReplyAudioURL:  &presignedURL,
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "X-Amz-Signature=abc")
}

func TestConsultationRouter_GetReplyAudio(t *testing.T) {
	f := setupConsultationRouter(t, false)

	fileName := utils.GenerateReplyAudioFileName()
	require.NoError(t, os.WriteFile(filepath.Join(f.internalConfig.App.MediaDir, fileName), []byte("ID3audio"), 0o644))

	t.Run("Existing Reply", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audio/"+fileName, nil)
		rr := httptest.NewRecorder()

		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMEAudioMPEG, rr.Header().Get(constvars.HeaderContentType))
		assert.Equal(t, "ID3audio", rr.Body.String())
	})

	t.Run("Unknown Reply", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audio/"+utils.GenerateReplyAudioFileName(), nil)
		rr := httptest.NewRecorder()

		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Foreign File Name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audio/passwd", nil)
		rr := httptest.NewRecorder()

		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSetupRoutes(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := newTestInternalConfig()
	internalConfig.App.MediaDir = t.TempDir()

	sessionService := new(MockSessionService)
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	authController := controllers.NewAuthController(logger, new(MockAuthUsecase))
	consultationController := controllers.NewConsultationController(logger, new(MockConsultationUsecase), internalConfig)

	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, internalConfig, middlewareInstance, authController, consultationController))

	t.Run("Index Page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "consultation-view")
		assert.Contains(t, rr.Body.String(), `<meta name="api-base" content="/api/v1">`)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Session Route Under Prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-request-id")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "client-request-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Consultation Guarded By Default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

}
