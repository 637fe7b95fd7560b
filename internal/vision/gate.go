package vision

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Detection limits sent with every label-detection request.
const (
	MaxLabels     = 20
	MinConfidence = 60
)

// Label is one classification result from the remote detector.
type Label struct {
	Name       string
	Confidence float64
}

// LabelDetector is the remote image-classification capability.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]Label, error)
}

// breedKeywords admit a photo when any of them appears in the joined,
// lower-cased label list.
var breedKeywords = []string{"labrador", "retriever", "lab"}

// BreedGate decides whether a submitted photo shows an accepted breed.
type BreedGate struct {
	detector LabelDetector
	log      zerolog.Logger
}

func NewBreedGate(detector LabelDetector, log zerolog.Logger) *BreedGate {
	return &BreedGate{detector: detector, log: log}
}

// Admit classifies the image and applies the keyword policy. A detector
// failure is logged and degrades to a rejection with an empty label list; it
// never surfaces as an error to the caller.
func (g *BreedGate) Admit(ctx context.Context, image []byte) (bool, []string) {
	detected, err := g.detector.DetectLabels(ctx, image)
	if err != nil {
		g.log.Error().Err(err).Msg("label detection failed")
		return false, []string{}
	}

	labels := make([]string, 0, len(detected))
	for _, l := range detected {
		labels = append(labels, strings.ToLower(l.Name))
	}

	joined := strings.Join(labels, " ")
	for _, kw := range breedKeywords {
		if strings.Contains(joined, kw) {
			return true, labels
		}
	}
	return false, labels
}
