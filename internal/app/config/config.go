package config

import (
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:             utils.GetEnvString("MONGO_URI", "mongodb://localhost:27017/"),
			DbName:          utils.GetEnvString("DB_NAME", "chatgpt_app"),
			UsersCollection: utils.GetEnvString("USERS_COLLECTION", "users"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	speechProvider := utils.GetEnvString("STT_PROVIDER", constvars.ProviderGroq)
	speechLanguage := constvars.DefaultTranscriptionLang
	if speechProvider == constvars.ProviderGoogle {
		speechLanguage = constvars.DefaultSpeechLanguageCode
	}

	visionProvider := utils.GetEnvString("LLM_PROVIDER", constvars.ProviderGroq)
	visionModel := constvars.DefaultVisionModel
	if visionProvider == constvars.ProviderGemini {
		visionModel = constvars.DefaultGeminiVisionModel
	}

	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.EnvironmentDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MediaDir:                   utils.GetEnvString("APP_MEDIA_DIR", "media"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 25),
			AuthRateLimitPerMinute:     utils.GetEnvInt("APP_AUTH_RATE_LIMIT_PER_MINUTE", 20),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", constvars.DefaultJWTSecret),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Speech: AppSpeech{
			Provider: speechProvider,
			Model:    utils.GetEnvString("STT_MODEL", constvars.DefaultTranscriptionModel),
			Language: utils.GetEnvString("STT_LANGUAGE", speechLanguage),
		},
		Vision: AppVision{
			Provider: visionProvider,
			Model:    utils.GetEnvString("LLM_MODEL", visionModel),
		},
		TTS: AppTTS{
			BaseURL:  utils.GetEnvString("TTS_BASE_URL", constvars.DefaultTTSBaseURL),
			Language: utils.GetEnvString("TTS_LANGUAGE", constvars.DefaultTTSLanguage),
		},
		Groq: AppGroq{
			APIKey:  utils.GetEnvString("GROQ_API_KEY", ""),
			BaseURL: utils.GetEnvString("GROQ_BASE_URL", constvars.DefaultGroqBaseURL),
		},
		Gemini: AppGemini{
			APIKey: utils.GetEnvString("GEMINI_API_KEY", ""),
		},
		Minio: AppMinio{
			BucketName:                utils.GetEnvString("MINIO_BUCKET_NAME", "medisense-replies"),
			PresignedURLExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			ConsultationQueue: utils.GetEnvString("RABBITMQ_CONSULTATION_QUEUE", "medisense.consultations"),
		},
		Consultant: AppConsultant{
			TimeoutInSeconds: utils.GetEnvInt("APP_CONSULTATION_TIMEOUT_IN_SECONDS", 120),
			RequiresLogin:    utils.GetEnvBool("APP_CONSULTATION_REQUIRES_LOGIN", true),
		},
	}
}
