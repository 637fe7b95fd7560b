package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "pupper-photos", cfg.PhotoBucket)
	assert.Equal(t, "pupper-dogs", cfg.DogsTable)
	assert.Equal(t, "pupper-interactions", cfg.InteractionsTable)
	assert.Equal(t, "pupper.listings", cfg.RabbitExchange)
	assert.Empty(t, cfg.RabbitURL)
	assert.False(t, cfg.S3UsePathStyle)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("PHOTO_BUCKET", "my-photos")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.True(t, cfg.S3UsePathStyle)
	assert.Equal(t, "my-photos", cfg.PhotoBucket)
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("S3_USE_PATH_STYLE", "maybe")

	assert.False(t, Load().S3UsePathStyle)
}
