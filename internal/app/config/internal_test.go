package config

import (
	"medisense-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *InternalConfig {
	return &InternalConfig{
		JWT:    AppJWT{Secret: "secret"},
		Speech: AppSpeech{Provider: constvars.ProviderGroq},
		Vision: AppVision{Provider: constvars.ProviderGroq},
		Groq:   AppGroq{APIKey: "gsk_test"},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	t.Run("Missing Groq Key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Groq.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Google Speech With Gemini Needs No Groq Key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Groq.APIKey = ""
		cfg.Speech.Provider = constvars.ProviderGoogle
		cfg.Vision.Provider = constvars.ProviderGemini
		cfg.Gemini.APIKey = "gemini-key"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Missing Gemini Key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Vision.Provider = constvars.ProviderGemini
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Speech.Provider = "whisper.cpp"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty JWT Secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Default JWT Secret Rejected In Production", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = constvars.DefaultJWTSecret
		assert.NoError(t, cfg.Validate())

		cfg.App.Env = constvars.EnvironmentProduction
		assert.Error(t, cfg.Validate())

		cfg.JWT.Secret = "a-real-secret"
		assert.NoError(t, cfg.Validate())
	})
}

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("STT_PROVIDER", constvars.ProviderGoogle)
	t.Setenv("LLM_PROVIDER", constvars.ProviderGemini)

	cfg := NewInternalConfig()

	assert.Equal(t, constvars.DefaultSpeechLanguageCode, cfg.Speech.Language)
	assert.Equal(t, constvars.DefaultGeminiVisionModel, cfg.Vision.Model)
	assert.Equal(t, 120, cfg.Consultant.TimeoutInSeconds)
}
