package ai

import (
	"context"
	"log"
	"medisense-service/internal/app/config"
	"medisense-service/internal/pkg/constvars"

	speech "cloud.google.com/go/speech/apiv1"
)

// NewSpeechClient uses Application Default Credentials.
func NewSpeechClient(ctx context.Context, internalConfig *config.InternalConfig) *speech.Client {
	if internalConfig.Speech.Provider != constvars.ProviderGoogle {
		return nil
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize google speech client: %s", err.Error())
	}

	log.Println("Successfully initialized google speech client")
	return client
}
