package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pupperhq/pupper-api/internal/config"
	"github.com/pupperhq/pupper-api/internal/genimage"
	"github.com/pupperhq/pupper-api/internal/handler"
	"github.com/pupperhq/pupper-api/internal/messaging"
	"github.com/pupperhq/pupper-api/internal/storage"
	"github.com/pupperhq/pupper-api/internal/submission"
	"github.com/pupperhq/pupper-api/internal/vision"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting pupper-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	awsCfg, err := storage.LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg)
	dogs := storage.NewDogStore(dynamoClient, cfg.DogsTable)
	interactions := storage.NewInteractionStore(dynamoClient, cfg.InteractionsTable)
	photos := storage.NewPhotoStore(storage.NewS3Client(awsCfg, cfg.S3UsePathStyle), cfg.PhotoBucket, cfg.AWSRegion)

	gate := vision.NewBreedGate(vision.NewRekognitionDetector(awsCfg), log)
	generator := genimage.NewBedrockGenerator(awsCfg, cfg.BedrockModelID)

	var events submission.EventPublisher
	if cfg.RabbitURL != "" {
		publisher, err := messaging.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange, log)
		if err != nil {
			log.Error().Err(err).Msg("event publishing disabled")
		} else {
			defer publisher.Close()
			events = publisher
		}
	}

	pipeline := submission.NewPipeline(gate, photos, dogs, generator, events, log)

	router := handler.NewRouter(
		handler.NewDogHandler(dogs, pipeline, log),
		handler.NewInteractionHandler(interactions, dogs, log),
		handler.NewPreviewHandler(generator, log),
		log,
	)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("pupper-api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down pupper-api")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}
