package capability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	appErr "github.com/ainable/backend/internal/pkg/errors"
)

type TitanImage struct {
	client  *bedrockruntime.Client
	modelID string
}

func NewTitanImage(cfg aws.Config, modelID string) *TitanImage {
	return &TitanImage{client: bedrockruntime.NewFromConfig(cfg), modelID: modelID}
}

type titanImageRequest struct {
	TaskType          string               `json:"taskType"`
	TextToImageParams titanTextToImage     `json:"textToImageParams"`
	GenerationConfig  titanImageGeneration `json:"imageGenerationConfig"`
}

type titanTextToImage struct {
	Text         string `json:"text"`
	NegativeText string `json:"negativeText,omitempty"`
}

type titanImageGeneration struct {
	NumberOfImages int32   `json:"numberOfImages"`
	Quality        string  `json:"quality"`
	Height         int32   `json:"height"`
	Width          int32   `json:"width"`
	CfgScale       float32 `json:"cfgScale"`
}

type titanImageResponse struct {
	Images []string `json:"images"`
	Error  string   `json:"error"`
}

func (t *TitanImage) Generate(ctx context.Context, req ImageRequest) ([]string, error) {
	body, err := json.Marshal(titanImageRequest{
		TaskType: "TEXT_IMAGE",
		TextToImageParams: titanTextToImage{
			Text:         req.Prompt,
			NegativeText: req.NegativePrompt,
		},
		GenerationConfig: titanImageGeneration{
			NumberOfImages: req.Count,
			Quality:        req.Quality,
			Height:         req.Height,
			Width:          req.Width,
			CfgScale:       req.GuidanceScale,
		},
	})
	if err != nil {
		return nil, err
	}
	out, err := t.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(t.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		var validation *brtypes.ValidationException
		if errors.As(err, &validation) {
			return nil, fmt.Errorf("%w: %v", appErr.ErrPromptRejected, err)
		}
		return nil, fmt.Errorf("invoke image model %s: %w", t.modelID, err)
	}
	var resp titanImageResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("image generation: %s", resp.Error)
	}
	if len(resp.Images) == 0 {
		return nil, fmt.Errorf("image generation returned no images")
	}
	return resp.Images, nil
}
