package vision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionDetector implements LabelDetector on Amazon Rekognition.
type RekognitionDetector struct {
	client *rekognition.Client
}

func NewRekognitionDetector(awsCfg aws.Config) *RekognitionDetector {
	return &RekognitionDetector{client: rekognition.NewFromConfig(awsCfg)}
}

func (d *RekognitionDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	out, err := d.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(MaxLabels),
		MinConfidence: aws.Float32(MinConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("detect labels: %w", err)
	}

	labels := make([]Label, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, Label{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}
