package handler

import (
	"context"

	"github.com/pupperhq/pupper-api/internal/domain"
	"github.com/pupperhq/pupper-api/internal/submission"
)

// DogStore defines listing reads for the serving path.
type DogStore interface {
	Get(ctx context.Context, id string) (*domain.Dog, error)
	List(ctx context.Context, limit int32, nextToken string) ([]domain.Dog, string, error)
}

// InteractionStore defines reaction writes and the likes lookup.
type InteractionStore interface {
	Put(ctx context.Context, in *domain.Interaction) error
	LikedDogIDs(ctx context.Context, userID string) ([]string, error)
}

// Submitter runs the listing intake pipeline.
type Submitter interface {
	Submit(ctx context.Context, req *submission.Request) (*domain.Dog, error)
}

// ImageGenerator synthesizes a preview image from a description.
type ImageGenerator interface {
	Generate(ctx context.Context, description string) (string, error)
}
