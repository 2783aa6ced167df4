package transcriber

import (
	"context"
	"fmt"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"os"
	"strings"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/gabriel-vasile/mimetype"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
)

const (
	opusSampleRateHertz = 48000
	mp3SampleRateHertz  = 44100
)

// recognizer is the part of *speech.Client used here.
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
}

type googleTranscriber struct {
	Client recognizer
	Log    *zap.Logger
}

func NewGoogleTranscriber(client recognizer, logger *zap.Logger) contracts.SpeechTranscriber {
	return &googleTranscriber{
		Client: client,
		Log:    logger,
	}
}

func (t *googleTranscriber) Transcribe(ctx context.Context, request *requests.Transcription) (string, error) {
	requestID := utils.GetRequestID(ctx)
	t.Log.Info("googleTranscriber.Transcribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, request.AudioPath),
	)

	if t.Client == nil {
		return "", exceptions.ErrTranscribeAudio(fmt.Errorf("speech client not initialized"), constvars.ProviderGoogle)
	}

	audioContent, err := os.ReadFile(request.AudioPath)
	if err != nil {
		return "", exceptions.ErrMediaFileUnreadable(err, request.AudioPath)
	}

	encoding, sampleRateHertz := recognitionEncoding(audioContent)
	response, err := t.Client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        encoding,
			SampleRateHertz: sampleRateHertz,
			LanguageCode:    request.Language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioContent},
		},
	})
	if err != nil {
		t.Log.Error("googleTranscriber.Transcribe error calling Recognize",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTranscribeAudio(err, constvars.ProviderGoogle)
	}

	var parts []string
	for _, result := range response.GetResults() {
		if len(result.GetAlternatives()) > 0 {
			parts = append(parts, strings.TrimSpace(result.GetAlternatives()[0].GetTranscript()))
		}
	}
	text := strings.TrimSpace(strings.Join(parts, " "))

	t.Log.Info("googleTranscriber.Transcribe succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
	)
	return text, nil
}

// recognitionEncoding maps the detected container to a v1 encoding.
// WAV and anything unknown stay unspecified so the service reads the header itself.
func recognitionEncoding(audioContent []byte) (speechpb.RecognitionConfig_AudioEncoding, int32) {
	detected := mimetype.Detect(audioContent)
	switch {
	case detected.Is("audio/flac"):
		return speechpb.RecognitionConfig_FLAC, 0
	case detected.Is("audio/mpeg"):
		return speechpb.RecognitionConfig_MP3, mp3SampleRateHertz
	case detected.Is("audio/ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS, opusSampleRateHertz
	case detected.Is("video/webm"):
		return speechpb.RecognitionConfig_WEBM_OPUS, opusSampleRateHertz
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0
	}
}
