package contracts

import (
	"context"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	RunConsultation(ctx context.Context, request *requests.Consultation) *responses.Consultation
}

type SpeechTranscriber interface {
	Transcribe(ctx context.Context, request *requests.Transcription) (string, error)
}

type ImageAnalyzer interface {
	Analyze(ctx context.Context, request *requests.ImageAnalysis) (string, error)
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, outputPath string) error
}
