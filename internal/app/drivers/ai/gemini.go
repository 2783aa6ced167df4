package ai

import (
	"context"
	"log"
	"medisense-service/internal/app/config"
	"medisense-service/internal/pkg/constvars"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

func NewGeminiClient(ctx context.Context, internalConfig *config.InternalConfig) *genai.Client {
	if internalConfig.Vision.Provider != constvars.ProviderGemini {
		return nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(internalConfig.Gemini.APIKey))
	if err != nil {
		log.Fatalf("Failed to initialize gemini client: %s", err.Error())
	}

	log.Println("Successfully initialized gemini client")
	return client
}
