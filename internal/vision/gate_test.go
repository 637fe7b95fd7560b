package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeDetector struct {
	labels []Label
	err    error
}

func (d *fakeDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	return d.labels, d.err
}

func TestAdmit_Labrador(t *testing.T) {
	gate := NewBreedGate(&fakeDetector{labels: []Label{
		{Name: "Dog", Confidence: 99.1},
		{Name: "Labrador Retriever", Confidence: 95.4},
		{Name: "Pet", Confidence: 99.9},
	}}, zerolog.Nop())

	admitted, labels := gate.Admit(context.Background(), []byte("img"))
	assert.True(t, admitted)
	assert.Equal(t, []string{"dog", "labrador retriever", "pet"}, labels)
}

func TestAdmit_KeywordLab(t *testing.T) {
	gate := NewBreedGate(&fakeDetector{labels: []Label{
		{Name: "Lab", Confidence: 80},
	}}, zerolog.Nop())

	admitted, _ := gate.Admit(context.Background(), []byte("img"))
	assert.True(t, admitted)
}

func TestAdmit_Rejected(t *testing.T) {
	gate := NewBreedGate(&fakeDetector{labels: []Label{
		{Name: "Cat", Confidence: 97.2},
		{Name: "Animal", Confidence: 99.8},
	}}, zerolog.Nop())

	admitted, labels := gate.Admit(context.Background(), []byte("img"))
	assert.False(t, admitted)
	assert.Equal(t, []string{"cat", "animal"}, labels)
}

func TestAdmit_DetectorFailureDegradesToRejection(t *testing.T) {
	gate := NewBreedGate(&fakeDetector{err: errors.New("throttled")}, zerolog.Nop())

	admitted, labels := gate.Admit(context.Background(), []byte("img"))
	assert.False(t, admitted)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestAdmit_NoLabels(t *testing.T) {
	gate := NewBreedGate(&fakeDetector{}, zerolog.Nop())

	admitted, labels := gate.Admit(context.Background(), []byte("img"))
	assert.False(t, admitted)
	assert.Empty(t, labels)
}
