package analyzer

import (
	"context"
	"encoding/base64"
	"fmt"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// contentGenerator is the part of *genai.GenerativeModel used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiAnalyzer struct {
	Log      *zap.Logger
	modelFor func(name string) contentGenerator
}

func NewGeminiAnalyzer(client *genai.Client, logger *zap.Logger) contracts.ImageAnalyzer {
	analyzer := &geminiAnalyzer{Log: logger}
	if client != nil {
		analyzer.modelFor = func(name string) contentGenerator {
			return client.GenerativeModel(name)
		}
	}
	return analyzer
}

func (a *geminiAnalyzer) Analyze(ctx context.Context, request *requests.ImageAnalysis) (string, error) {
	requestID := utils.GetRequestID(ctx)
	a.Log.Info("geminiAnalyzer.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, request.Model),
	)

	if a.modelFor == nil {
		return "", exceptions.ErrAnalysisClient(fmt.Errorf("gemini client not initialized"), constvars.ProviderGemini)
	}

	imageData, err := base64.StdEncoding.DecodeString(request.EncodedImage)
	if err != nil {
		return "", exceptions.ErrAnalyzeImage(err, constvars.ProviderGemini)
	}

	// genai wants the subtype only, e.g. "jpeg" for image/jpeg.
	mimeType := request.MIMEType
	if mimeType == "" {
		mimeType = constvars.DefaultImageMIMEType
	}
	format := strings.TrimPrefix(mimeType, "image/")

	response, err := a.modelFor(request.Model).GenerateContent(ctx,
		genai.Text(request.Prompt),
		genai.ImageData(format, imageData),
	)
	if err != nil {
		a.Log.Error("geminiAnalyzer.Analyze error generating content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrAnalyzeImage(err, constvars.ProviderGemini)
	}

	reply := extractGeminiText(response)
	if reply == "" {
		return "", exceptions.ErrAnalysisEmptyResponse(fmt.Errorf("no text candidates"), constvars.ProviderGemini)
	}

	a.Log.Info("geminiAnalyzer.Analyze succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTextLengthKey, len(reply)),
	)
	return reply, nil
}

func extractGeminiText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return strings.TrimSpace(builder.String())
}
