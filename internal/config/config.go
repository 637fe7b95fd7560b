package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the API service.
type Config struct {
	// HTTP server
	HTTPAddr string

	// AWS
	AWSRegion          string
	AWSEndpoint        string // custom endpoint for LocalStack/MinIO; empty for real AWS
	AWSAccessKeyID     string // static credentials; empty uses the default chain
	AWSSecretAccessKey string
	S3UsePathStyle     bool // true for MinIO/LocalStack, false for real S3

	// Storage
	PhotoBucket       string
	DogsTable         string
	InteractionsTable string

	// Image generation
	BedrockModelID string

	// RabbitMQ; empty RabbitURL disables event publishing
	RabbitURL      string
	RabbitExchange string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3UsePathStyle:     getEnvBool("S3_USE_PATH_STYLE", false),
		PhotoBucket:        getEnv("PHOTO_BUCKET", "pupper-photos"),
		DogsTable:          getEnv("DOGS_TABLE", "pupper-dogs"),
		InteractionsTable:  getEnv("INTERACTIONS_TABLE", "pupper-interactions"),
		BedrockModelID:     getEnv("BEDROCK_MODEL_ID", ""),
		RabbitURL:          getEnv("RABBIT_URL", ""),
		RabbitExchange:     getEnv("RABBIT_EXCHANGE", "pupper.listings"),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultVal
}
