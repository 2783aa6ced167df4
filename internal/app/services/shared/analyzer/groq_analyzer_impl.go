package analyzer

import (
	"context"
	"fmt"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/dto/requests"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type groqAnalyzer struct {
	Client *openai.Client
	APIKey string
	Log    *zap.Logger
}

func NewGroqAnalyzer(client *openai.Client, apiKey string, logger *zap.Logger) contracts.ImageAnalyzer {
	return &groqAnalyzer{
		Client: client,
		APIKey: apiKey,
		Log:    logger,
	}
}

func (a *groqAnalyzer) Analyze(ctx context.Context, request *requests.ImageAnalysis) (string, error) {
	requestID := utils.GetRequestID(ctx)
	a.Log.Info("groqAnalyzer.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, request.Model),
	)

	if a.APIKey == "" || a.Client == nil {
		return "", exceptions.ErrAnalysisClient(exceptions.ErrConfigMissingAPIKey(nil, constvars.ProviderGroq), constvars.ProviderGroq)
	}

	response, err := a.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: request.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: request.Prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: buildDataURL(request.MIMEType, request.EncodedImage),
						},
					},
				},
			},
		},
	})
	if err != nil {
		a.Log.Error("groqAnalyzer.Analyze error calling chat completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrAnalyzeImage(err, constvars.ProviderGroq)
	}

	if len(response.Choices) == 0 {
		return "", exceptions.ErrAnalysisEmptyResponse(fmt.Errorf("no choices in response %s", response.ID), constvars.ProviderGroq)
	}

	reply := response.Choices[0].Message.Content
	a.Log.Info("groqAnalyzer.Analyze succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTextLengthKey, len(reply)),
	)
	return reply, nil
}
