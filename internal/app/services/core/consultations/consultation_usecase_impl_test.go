package consultations

import (
	"context"
	"errors"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, request *requests.Transcription) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, request *requests.ImageAnalysis) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type fakeSynthesizer struct {
	err   error
	texts []string
	paths []string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	f.texts = append(f.texts, text)
	f.paths = append(f.paths, outputPath)
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte("ID3"+text), 0o644)
}

type MockAudioArchive struct {
	mock.Mock
}

func (m *MockAudioArchive) UploadAudio(ctx context.Context, filePath, objectName string) (string, error) {
	args := m.Called(ctx, filePath, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockAudioArchive) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type recordingPublisher struct {
	events []*models.ConsultationEvent
	err    error
}

func (p *recordingPublisher) PublishConsultationCompleted(ctx context.Context, event *models.ConsultationEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type fixture struct {
	transcriber *MockTranscriber
	analyzer    *MockAnalyzer
	synthesizer *fakeSynthesizer
	publisher   *recordingPublisher
	usecase     *consultationUsecase
	mediaDir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		transcriber: new(MockTranscriber),
		analyzer:    new(MockAnalyzer),
		synthesizer: &fakeSynthesizer{},
		publisher:   &recordingPublisher{},
		mediaDir:    t.TempDir(),
	}
	f.usecase = &consultationUsecase{
		Transcriber:    f.transcriber,
		Analyzer:       f.analyzer,
		Synthesizer:    f.synthesizer,
		EventPublisher: f.publisher,
		InternalConfig: &config.InternalConfig{
			App:    config.App{MediaDir: f.mediaDir},
			Speech: config.AppSpeech{Provider: "groq", Model: "whisper-large-v3", Language: "en"},
			Vision: config.AppVision{Provider: "groq", Model: "vision-model"},
			Minio:  config.AppMinio{PresignedURLExpiryInHours: 1},
		},
		Log: zap.NewNop(),
	}
	return f
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRunConsultationWithoutInputs(t *testing.T) {
	f := newFixture(t)

	result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

	assert.Equal(t, constvars.FallbackCouldNotCaptureVoice, result.Transcript)
	assert.Equal(t, constvars.FallbackNoImageProvided, result.DoctorReply)
	require.NotNil(t, result.ReplyAudioPath)
	assert.FileExists(t, *result.ReplyAudioPath)
	assert.Equal(t, []string{constvars.FallbackNoImageProvided}, f.synthesizer.texts)
	f.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
	f.analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestRunConsultationSynthesisFailureGivesNilAudio(t *testing.T) {
	f := newFixture(t)
	f.synthesizer.err = errors.New("tts unavailable")

	result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

	assert.Equal(t, constvars.FallbackCouldNotCaptureVoice, result.Transcript)
	assert.Equal(t, constvars.FallbackNoImageProvided, result.DoctorReply)
	assert.Nil(t, result.ReplyAudioPath)
	assert.Nil(t, result.ReplyAudioURL)
	require.Len(t, f.publisher.events, 1)
	assert.False(t, f.publisher.events[0].HasReplyAudio)
}

func TestRunConsultationEmptyOrMissingAudio(t *testing.T) {
	f := newFixture(t)

	emptyAudio := writeFile(t, "empty.wav", nil)
	for _, audioPath := range []string{emptyAudio, filepath.Join(t.TempDir(), "missing.wav")} {
		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{AudioPath: audioPath})
		assert.Equal(t, constvars.FallbackCouldNotCaptureVoice, result.Transcript)
	}
	f.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestRunConsultationAudioOnly(t *testing.T) {
	f := newFixture(t)
	audioPath := writeFile(t, "voice.wav", []byte("RIFF"))
	f.transcriber.On("Transcribe", mock.Anything, mock.MatchedBy(func(r *requests.Transcription) bool {
		return r.AudioPath == audioPath && r.Model == "whisper-large-v3" && r.Language == "en"
	})).Return("I have a headache", nil)

	result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{AudioPath: audioPath})

	assert.Equal(t, "I have a headache", result.Transcript)
	assert.Equal(t, constvars.FallbackNoImageProvided, result.DoctorReply)
	f.analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
	f.transcriber.AssertExpectations(t)
}

func TestRunConsultationFullFlow(t *testing.T) {
	f := newFixture(t)
	audioPath := writeFile(t, "voice.wav", []byte("RIFF"))
	imagePath := writeFile(t, "scan.jpg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F'})

	f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return("I have a headache", nil)
	f.analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(r *requests.ImageAnalysis) bool {
		return r.Prompt == constvars.DoctorSystemPrompt+"I have a headache" &&
			r.Model == "vision-model" &&
			r.EncodedImage != "" &&
			r.MIMEType == "image/jpeg"
	})).Return("With what I see, I think you have a tension headache.", nil)

	result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{
		AudioPath: audioPath,
		ImagePath: imagePath,
		Username:  "alice",
	})

	assert.Equal(t, "I have a headache", result.Transcript)
	assert.Equal(t, "With what I see, I think you have a tension headache.", result.DoctorReply)
	require.NotNil(t, result.ReplyAudioPath)
	assert.Equal(t, f.mediaDir, filepath.Dir(*result.ReplyAudioPath))
	assert.True(t, strings.HasPrefix(filepath.Base(*result.ReplyAudioPath), "reply-"))
	assert.FileExists(t, *result.ReplyAudioPath)

	require.Len(t, f.publisher.events, 1)
	event := f.publisher.events[0]
	assert.Equal(t, "consultation.completed", event.EventType)
	assert.Equal(t, "alice", event.Username)
	assert.True(t, event.HasAudio)
	assert.True(t, event.HasImage)
	assert.True(t, event.HasReplyAudio)
	assert.Equal(t, filepath.Base(*result.ReplyAudioPath), event.ReplyAudioKey)
}

func TestRunConsultationDegradesOnServiceErrors(t *testing.T) {
	t.Run("Transcription Error", func(t *testing.T) {
		f := newFixture(t)
		f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return("", errors.New("groq down"))

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{AudioPath: writeFile(t, "voice.wav", []byte("RIFF"))})

		assert.Equal(t, constvars.FallbackCouldNotTranscribe, result.Transcript)
	})

	t.Run("Encode Error", func(t *testing.T) {
		f := newFixture(t)

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{ImagePath: filepath.Join(t.TempDir(), "missing.jpg")})

		assert.Equal(t, constvars.FallbackCouldNotEncodeImage, result.DoctorReply)
		f.analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
	})

	t.Run("Analysis Error", func(t *testing.T) {
		f := newFixture(t)
		f.analyzer.On("Analyze", mock.Anything, mock.Anything).Return("", errors.New("no choices"))

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{ImagePath: writeFile(t, "scan.jpg", []byte("jpeg"))})

		assert.Equal(t, constvars.FallbackCouldNotAnalyzeImage, result.DoctorReply)
		assert.Equal(t, []string{constvars.FallbackCouldNotAnalyzeImage}, f.synthesizer.texts)
	})

	t.Run("Publisher Error Is Swallowed", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.err = errors.New("broker gone")

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

		assert.NotNil(t, result)
		assert.NotNil(t, result.ReplyAudioPath)
	})
}

func TestRunConsultationUniqueReplyPaths(t *testing.T) {
	f := newFixture(t)

	first := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})
	second := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

	require.NotNil(t, first.ReplyAudioPath)
	require.NotNil(t, second.ReplyAudioPath)
	assert.NotEqual(t, *first.ReplyAudioPath, *second.ReplyAudioPath)
}

func TestRunConsultationArchivesReply(t *testing.T) {
	t.Run("Presigned URL", func(t *testing.T) {
		f := newFixture(t)
		archive := new(MockAudioArchive)
		f.usecase.AudioArchive = archive

		archive.On("UploadAudio", mock.Anything, mock.Anything, mock.Anything).Return("reply-x.mp3", nil)
		archive.On("GetObjectUrlWithExpiryTime", mock.Anything, "reply-x.mp3", time.Hour).Return("https://minio.local/replies/reply-x.mp3?sig", nil)

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

		require.NotNil(t, result.ReplyAudioURL)
		assert.Equal(t, "https://minio.local/replies/reply-x.mp3?sig", *result.ReplyAudioURL)
		archive.AssertExpectations(t)
	})

	t.Run("Upload Failure Keeps Local Audio", func(t *testing.T) {
		f := newFixture(t)
		archive := new(MockAudioArchive)
		f.usecase.AudioArchive = archive

		archive.On("UploadAudio", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

		result := f.usecase.RunConsultation(context.Background(), &requests.Consultation{})

		assert.NotNil(t, result.ReplyAudioPath)
		assert.Nil(t, result.ReplyAudioURL)
	})
}
