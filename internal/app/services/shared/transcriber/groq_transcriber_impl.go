package transcriber

import (
	"context"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type groqTranscriber struct {
	Client *openai.Client
	APIKey string
	Log    *zap.Logger
}

// NewGroqTranscriber talks to Groq's OpenAI compatible audio endpoint.
func NewGroqTranscriber(client *openai.Client, apiKey string, logger *zap.Logger) contracts.SpeechTranscriber {
	return &groqTranscriber{
		Client: client,
		APIKey: apiKey,
		Log:    logger,
	}
}

func (t *groqTranscriber) Transcribe(ctx context.Context, request *requests.Transcription) (string, error) {
	requestID := utils.GetRequestID(ctx)
	t.Log.Info("groqTranscriber.Transcribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, request.AudioPath),
		zap.String(constvars.LoggingModelKey, request.Model),
	)

	if t.APIKey == "" || t.Client == nil {
		return "", exceptions.ErrConfigMissingAPIKey(nil, constvars.ProviderGroq)
	}

	audioFile, err := os.Open(request.AudioPath)
	if err != nil {
		return "", exceptions.ErrMediaFileUnreadable(err, request.AudioPath)
	}
	defer audioFile.Close()

	response, err := t.Client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    request.Model,
		Reader:   audioFile,
		FilePath: filepath.Base(request.AudioPath),
		Language: request.Language,
	})
	if err != nil {
		t.Log.Error("groqTranscriber.Transcribe error calling transcription endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTranscribeAudio(err, constvars.ProviderGroq)
	}

	text := strings.TrimSpace(response.Text)

	t.Log.Info("groqTranscriber.Transcribe succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
	)
	return text, nil
}
