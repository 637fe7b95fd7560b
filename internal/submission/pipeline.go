// Package submission implements the listing intake pipeline: field
// validation, image resolution, breed admission, rendering, blob upload and
// the final record write. Each step is a hard gate on the next; nothing is
// written to either store until every gate before it has passed.
package submission

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pupperhq/pupper-api/internal/apperrors"
	"github.com/pupperhq/pupper-api/internal/domain"
	"github.com/pupperhq/pupper-api/internal/imaging"
)

// Gate decides whether a submitted photo is admitted, returning the labels
// the detector saw either way.
type Gate interface {
	Admit(ctx context.Context, image []byte) (bool, []string)
}

// PhotoStore uploads renditions and derives their public URLs.
type PhotoStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(key string) string
}

// DogWriter writes the composed listing record.
type DogWriter interface {
	Put(ctx context.Context, dog *domain.Dog) error
}

// Generator synthesizes an image from a description, base64-encoded.
type Generator interface {
	Generate(ctx context.Context, description string) (string, error)
}

// EventPublisher emits a best-effort event after a listing is persisted.
type EventPublisher interface {
	ListingCreated(ctx context.Context, dog *domain.Dog) error
}

// requiredFields is the fixed check order reported back on validation failure.
var requiredFields = []struct {
	name  string
	value func(*Request) string
}{
	{"name", func(r *Request) string { return r.Name }},
	{"species", func(r *Request) string { return r.Species }},
	{"shelter", func(r *Request) string { return r.Shelter }},
}

// Pipeline orchestrates one submission. Pipelines are stateless and safe for
// concurrent use.
type Pipeline struct {
	gate      Gate
	photos    PhotoStore
	dogs      DogWriter
	generator Generator
	events    EventPublisher // nil disables event publishing
	newID     func() string
	log       zerolog.Logger
}

func NewPipeline(gate Gate, photos PhotoStore, dogs DogWriter, generator Generator, events EventPublisher, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		gate:      gate,
		photos:    photos,
		dogs:      dogs,
		generator: generator,
		events:    events,
		newID:     uuid.NewString,
		log:       log,
	}
}

// Submit runs the full intake sequence and returns the persisted listing.
// Errors are typed for the handler boundary: validation and decode failures
// map to 400, a breed rejection to 422 (carrying labels), storage failures to
// 500. If the record write fails after the blob uploads succeeded the blobs
// are left orphaned; the submission still fails and no listing is visible.
func (p *Pipeline) Submit(ctx context.Context, req *Request) (*domain.Dog, error) {
	var missing []string
	for _, f := range requiredFields {
		if f.value(req) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewInvalidInput("Missing required fields: " + strings.Join(missing, ", "))
	}
	if req.WeightInPounds.Invalid() {
		return nil, apperrors.NewInvalidInput("Invalid weightInPounds: must be a number")
	}

	imageData, err := p.resolveImage(ctx, req)
	if err != nil {
		return nil, err
	}

	admitted, labels := p.gate.Admit(ctx, imageData)
	if !admitted {
		return nil, &apperrors.BreedRejection{Labels: labels}
	}

	renditions, err := imaging.Render(imageData)
	if err != nil {
		return nil, apperrors.NewInvalidInput("Invalid image data")
	}

	id := p.newID()
	uploads := []struct {
		key  string
		data []byte
	}{
		{id + "/original.png", renditions.Original},
		{id + "/standard.png", renditions.Standard},
		{id + "/thumbnail.png", renditions.Thumbnail},
	}
	for _, u := range uploads {
		if err := p.photos.Put(ctx, u.key, u.data, imaging.ContentType); err != nil {
			p.log.Error().Err(err).Str("key", u.key).Msg("photo upload failed")
			return nil, apperrors.NewDependency("Error uploading to S3", err)
		}
	}

	dog := &domain.Dog{
		ID:               id,
		Name:             req.Name,
		Species:          req.Species,
		Shelter:          req.Shelter,
		City:             req.City,
		State:            req.State,
		Description:      req.Description,
		Birthday:         req.Birthday,
		WeightInPounds:   req.WeightInPounds.Int(),
		Color:            req.Color,
		Photo:            p.photos.URL(id + "/standard.png"),
		OriginalPhoto:    p.photos.URL(id + "/original.png"),
		ThumbnailPhoto:   p.photos.URL(id + "/thumbnail.png"),
		ShelterEntryDate: req.ShelterEntryDate,
	}
	if err := p.dogs.Put(ctx, dog); err != nil {
		p.log.Error().Err(err).Str("dog_id", id).Msg("listing write failed, blobs orphaned")
		return nil, apperrors.NewDependency(fmt.Sprintf("Failed to save dog data: %v", err), err)
	}

	if p.events != nil {
		if err := p.events.ListingCreated(ctx, dog); err != nil {
			p.log.Warn().Err(err).Str("dog_id", id).Msg("failed to publish listing.created")
		}
	}

	return dog, nil
}

// resolveImage picks the photo source: supplied base64 bytes win over a
// generation description; neither present is a validation failure.
func (p *Pipeline) resolveImage(ctx context.Context, req *Request) ([]byte, error) {
	switch {
	case req.Image != "":
		data, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return nil, apperrors.NewInvalidInput("Invalid image data")
		}
		return data, nil
	case req.GenerateImageDescription != "":
		generated, err := p.generator.Generate(ctx, req.GenerateImageDescription)
		if err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.DecodeString(generated)
		if err != nil {
			return nil, fmt.Errorf("decode generated image: %w", err)
		}
		return data, nil
	default:
		return nil, apperrors.NewInvalidInput("No image provided")
	}
}
