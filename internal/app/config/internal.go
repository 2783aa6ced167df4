package config

import (
	"fmt"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
)

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Speech     AppSpeech
	Vision     AppVision
	TTS        AppTTS
	Groq       AppGroq
	Gemini     AppGemini
	Minio      AppMinio
	RabbitMQ   AppRabbitMQ
	Consultant AppConsultant
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	EndpointPrefix             string
	MediaDir                   string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
	AuthRateLimitPerMinute     int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSpeech struct {
	Provider string
	Model    string
	Language string
}

type AppVision struct {
	Provider string
	Model    string
}

type AppTTS struct {
	BaseURL  string
	Language string
}

type AppGroq struct {
	APIKey  string
	BaseURL string
}

type AppGemini struct {
	APIKey string
}

type AppMinio struct {
	BucketName                string
	PresignedURLExpiryInHours int
}

type AppRabbitMQ struct {
	ConsultationQueue string
}

type AppConsultant struct {
	TimeoutInSeconds int
	RequiresLogin    bool
}

// Validate fails when a selected hosted provider has no key.
func (c *InternalConfig) Validate() error {
	if c.Speech.Provider != constvars.ProviderGroq && c.Speech.Provider != constvars.ProviderGoogle {
		return fmt.Errorf("unsupported STT_PROVIDER %q", c.Speech.Provider)
	}
	if c.Vision.Provider != constvars.ProviderGroq && c.Vision.Provider != constvars.ProviderGemini {
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.Vision.Provider)
	}

	usesGroq := c.Speech.Provider == constvars.ProviderGroq || c.Vision.Provider == constvars.ProviderGroq
	if usesGroq && c.Groq.APIKey == "" {
		return exceptions.ErrConfigMissingAPIKey(nil, constvars.ProviderGroq)
	}
	if c.Vision.Provider == constvars.ProviderGemini && c.Gemini.APIKey == "" {
		return exceptions.ErrConfigMissingAPIKey(nil, constvars.ProviderGemini)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.App.Env == constvars.EnvironmentProduction && c.JWT.Secret == constvars.DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set explicitly in production")
	}
	return nil
}
