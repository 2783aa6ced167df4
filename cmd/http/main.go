package main

import (
	"context"
	"log"
	"medisense-service/internal/app/config"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/app/delivery/http/controllers"
	"medisense-service/internal/app/delivery/http/middlewares"
	"medisense-service/internal/app/delivery/http/routers"
	"medisense-service/internal/app/drivers/ai"
	"medisense-service/internal/app/drivers/database"
	"medisense-service/internal/app/drivers/logger"
	"medisense-service/internal/app/drivers/messaging"
	"medisense-service/internal/app/drivers/storage"
	"medisense-service/internal/app/services/core/auth"
	"medisense-service/internal/app/services/core/consultations"
	"medisense-service/internal/app/services/core/session"
	"medisense-service/internal/app/services/core/users"
	"medisense-service/internal/app/services/shared/analyzer"
	"medisense-service/internal/app/services/shared/events"
	"medisense-service/internal/app/services/shared/redis"
	minioStorage "medisense-service/internal/app/services/shared/storage"
	"medisense-service/internal/app/services/shared/synthesizer"
	"medisense-service/internal/app/services/shared/transcriber"
	"medisense-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := internalConfig.Validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting medisense service",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
		zap.String("speech_provider", internalConfig.Speech.Provider),
		zap.String("vision_provider", internalConfig.Vision.Provider),
	)

	err = os.MkdirAll(internalConfig.App.MediaDir, 0o755)
	if err != nil {
		log.Fatalf("Failed to create media directory %s: %v", internalConfig.App.MediaDir, err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)

	// Users
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.DriverConfig.MongoDB.UsersCollection,
	)
	err := userMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, internalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Hosted AI services
	groqClient := ai.NewGroqClient(internalConfig)

	var speechTranscriber contracts.SpeechTranscriber
	switch internalConfig.Speech.Provider {
	case constvars.ProviderGoogle:
		speechClient := ai.NewSpeechClient(ctx, internalConfig)
		bootstrap.Closers = append(bootstrap.Closers, speechClient.Close)
		speechTranscriber = transcriber.NewGoogleTranscriber(speechClient, bootstrap.Logger)
	default:
		speechTranscriber = transcriber.NewGroqTranscriber(groqClient, internalConfig.Groq.APIKey, bootstrap.Logger)
	}

	var imageAnalyzer contracts.ImageAnalyzer
	switch internalConfig.Vision.Provider {
	case constvars.ProviderGemini:
		geminiClient := ai.NewGeminiClient(ctx, internalConfig)
		bootstrap.Closers = append(bootstrap.Closers, geminiClient.Close)
		imageAnalyzer = analyzer.NewGeminiAnalyzer(geminiClient, bootstrap.Logger)
	default:
		imageAnalyzer = analyzer.NewGroqAnalyzer(groqClient, internalConfig.Groq.APIKey, bootstrap.Logger)
	}

	speechSynthesizer := synthesizer.NewGTTSSynthesizer(internalConfig.TTS.BaseURL, internalConfig.TTS.Language, bootstrap.Logger)

	// Reply audio archive
	var audioArchive contracts.AudioArchive
	if bootstrap.Minio != nil {
		audioArchive = minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, bootstrap.Logger)
	}

	// Consultation events
	eventPublisher := events.NewLogOnlyPublisher(bootstrap.Logger)
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, closeChannel, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ConsultationQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		bootstrap.Closers = append(bootstrap.Closers, closeChannel)
		eventPublisher = rabbitPublisher
	}

	// Consultations
	consultationUsecase := consultations.NewConsultationUsecase(
		speechTranscriber,
		imageAnalyzer,
		speechSynthesizer,
		audioArchive,
		eventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	consultationController := controllers.NewConsultationController(bootstrap.Logger, consultationUsecase, internalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, internalConfig)

	return routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, authController, consultationController)
}
