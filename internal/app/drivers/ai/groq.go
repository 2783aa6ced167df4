package ai

import (
	"log"
	"medisense-service/internal/app/config"
	"medisense-service/internal/pkg/constvars"

	"github.com/sashabaranov/go-openai"
)

// NewGroqClient returns nil when neither speech nor vision is routed to Groq.
func NewGroqClient(internalConfig *config.InternalConfig) *openai.Client {
	if internalConfig.Speech.Provider != constvars.ProviderGroq && internalConfig.Vision.Provider != constvars.ProviderGroq {
		return nil
	}

	clientConfig := openai.DefaultConfig(internalConfig.Groq.APIKey)
	clientConfig.BaseURL = internalConfig.Groq.BaseURL
	client := openai.NewClientWithConfig(clientConfig)

	log.Println("Successfully initialized groq client")
	return client
}
