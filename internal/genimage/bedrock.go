package genimage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// DefaultModelID is the image-generation model invoked when none is configured.
const DefaultModelID = "amazon.nova-canvas-v1:0"

// BedrockGenerator implements Generator on the Bedrock runtime.
type BedrockGenerator struct {
	client  *bedrockruntime.Client
	modelID string
}

func NewBedrockGenerator(awsCfg aws.Config, modelID string) *BedrockGenerator {
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &BedrockGenerator{
		client:  bedrockruntime.NewFromConfig(awsCfg),
		modelID: modelID,
	}
}

type textToImageRequest struct {
	TaskType          string `json:"taskType"`
	TextToImageParams struct {
		Text string `json:"text"`
	} `json:"textToImageParams"`
	ImageGenerationConfig struct {
		NumberOfImages int `json:"numberOfImages"`
		Height         int `json:"height"`
		Width          int `json:"width"`
	} `json:"imageGenerationConfig"`
}

func (g *BedrockGenerator) Generate(ctx context.Context, description string) (string, error) {
	req := textToImageRequest{TaskType: "TEXT_IMAGE"}
	req.TextToImageParams.Text = description
	req.ImageGenerationConfig.NumberOfImages = 1
	req.ImageGenerationConfig.Height = 512
	req.ImageGenerationConfig.Width = 512

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invoke model %s: %w", g.modelID, err)
	}

	var resp struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if len(resp.Images) == 0 {
		return "", errors.New("model returned no images")
	}
	return resp.Images[0], nil
}
