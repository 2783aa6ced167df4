package consultations

import (
	"context"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/app/models"
	"medisense-service/internal/app/services/shared/analyzer"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/dto/responses"
	"medisense-service/internal/pkg/utils"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type consultationUsecase struct {
	Transcriber    contracts.SpeechTranscriber
	Analyzer       contracts.ImageAnalyzer
	Synthesizer    contracts.SpeechSynthesizer
	AudioArchive   contracts.AudioArchive
	EventPublisher contracts.ConsultationEventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

// NewConsultationUsecase wires the voice and vision pipeline. audioArchive may be nil.
func NewConsultationUsecase(
	transcriber contracts.SpeechTranscriber,
	imageAnalyzer contracts.ImageAnalyzer,
	synthesizer contracts.SpeechSynthesizer,
	audioArchive contracts.AudioArchive,
	eventPublisher contracts.ConsultationEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	return &consultationUsecase{
		Transcriber:    transcriber,
		Analyzer:       imageAnalyzer,
		Synthesizer:    synthesizer,
		AudioArchive:   audioArchive,
		EventPublisher: eventPublisher,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// RunConsultation always returns a displayable result. Every external failure
// is logged and replaced by a fixed message, or by a nil audio path for synthesis.
func (uc *consultationUsecase) RunConsultation(ctx context.Context, request *requests.Consultation) *responses.Consultation {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("consultationUsecase.RunConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingHasAudioKey, request.AudioPath != ""),
		zap.Bool(constvars.LoggingHasImageKey, request.ImagePath != ""),
	)

	transcript := uc.transcribe(ctx, request.AudioPath)
	doctorReply := uc.analyze(ctx, request.ImagePath, transcript)

	result := &responses.Consultation{
		Transcript:  transcript,
		DoctorReply: doctorReply,
	}

	replyAudioPath := uc.synthesize(ctx, doctorReply)
	if replyAudioPath != "" {
		result.ReplyAudioPath = &replyAudioPath
		result.ReplyAudioURL = uc.archive(ctx, replyAudioPath)
	}

	uc.publish(ctx, request, result)

	uc.Log.Info("consultationUsecase.RunConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingHasReplyAudioKey, result.ReplyAudioPath != nil),
	)
	return result
}

func (uc *consultationUsecase) transcribe(ctx context.Context, audioPath string) string {
	requestID := utils.GetRequestID(ctx)

	if !utils.IsNonEmptyFile(audioPath) {
		uc.Log.Info("consultationUsecase.transcribe no usable audio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFilePathKey, audioPath),
		)
		return constvars.FallbackCouldNotCaptureVoice
	}

	transcript, err := uc.Transcriber.Transcribe(ctx, &requests.Transcription{
		AudioPath: audioPath,
		Model:     uc.InternalConfig.Speech.Model,
		Language:  uc.InternalConfig.Speech.Language,
	})
	if err != nil {
		uc.Log.Error("consultationUsecase.transcribe error transcribing audio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.InternalConfig.Speech.Provider),
			zap.Error(err),
		)
		return constvars.FallbackCouldNotTranscribe
	}
	return transcript
}

func (uc *consultationUsecase) analyze(ctx context.Context, imagePath, transcript string) string {
	requestID := utils.GetRequestID(ctx)

	if imagePath == "" {
		return constvars.FallbackNoImageProvided
	}

	encodedImage, mimeType, err := analyzer.EncodeImage(imagePath)
	if err != nil {
		uc.Log.Error("consultationUsecase.analyze error encoding image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFilePathKey, imagePath),
			zap.Error(err),
		)
		return constvars.FallbackCouldNotEncodeImage
	}

	reply, err := uc.Analyzer.Analyze(ctx, &requests.ImageAnalysis{
		Prompt:       constvars.DoctorSystemPrompt + transcript,
		Model:        uc.InternalConfig.Vision.Model,
		EncodedImage: encodedImage,
		MIMEType:     mimeType,
	})
	if err != nil {
		uc.Log.Error("consultationUsecase.analyze error analyzing image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.InternalConfig.Vision.Provider),
			zap.Error(err),
		)
		return constvars.FallbackCouldNotAnalyzeImage
	}
	return reply
}

// synthesize returns the written file path, or "" when no audio could be produced.
func (uc *consultationUsecase) synthesize(ctx context.Context, text string) string {
	requestID := utils.GetRequestID(ctx)
	outputPath := filepath.Join(uc.InternalConfig.App.MediaDir, utils.GenerateReplyAudioFileName())

	err := uc.Synthesizer.Synthesize(ctx, text, outputPath)
	if err != nil {
		uc.Log.Error("consultationUsecase.synthesize error synthesizing reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		os.Remove(outputPath)
		return ""
	}

	if !utils.IsNonEmptyFile(outputPath) {
		uc.Log.Error("consultationUsecase.synthesize reply audio missing after synthesis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFilePathKey, outputPath),
		)
		return ""
	}
	return outputPath
}

// archive returns a presigned URL for the reply, or nil when archiving is off or fails.
func (uc *consultationUsecase) archive(ctx context.Context, replyAudioPath string) *string {
	if uc.AudioArchive == nil {
		return nil
	}
	requestID := utils.GetRequestID(ctx)

	objectName, err := uc.AudioArchive.UploadAudio(ctx, replyAudioPath, filepath.Base(replyAudioPath))
	if err != nil {
		uc.Log.Error("consultationUsecase.archive error uploading reply audio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInHours) * time.Hour
	presignedURL, err := uc.AudioArchive.GetObjectUrlWithExpiryTime(ctx, objectName, expiry)
	if err != nil {
		uc.Log.Error("consultationUsecase.archive error presigning reply audio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return &presignedURL
}

func (uc *consultationUsecase) publish(ctx context.Context, request *requests.Consultation, result *responses.Consultation) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.ConsultationEvent{
		EventType:     constvars.ConsultationEventCompleted,
		RequestID:     utils.GetRequestID(ctx),
		Username:      request.Username,
		HasAudio:      request.AudioPath != "",
		HasImage:      request.ImagePath != "",
		HasReplyAudio: result.ReplyAudioPath != nil,
		OccurredAt:    time.Now().UTC(),
	}
	if result.ReplyAudioPath != nil {
		event.ReplyAudioKey = filepath.Base(*result.ReplyAudioPath)
	}

	err := uc.EventPublisher.PublishConsultationCompleted(ctx, event)
	if err != nil {
		uc.Log.Warn("consultationUsecase.publish error publishing consultation event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Error(err),
		)
	}
}
