package capability

import "context"

type ImageRequest struct {
	Prompt         string
	NegativePrompt string
	Count          int32
	Width          int32
	Height         int32
	Quality        string
	GuidanceScale  float32
}

// ImageGenerator synthesizes images from a text prompt and returns them
// base64-encoded. Prompt length and content are validated by the backend;
// a rejected prompt surfaces as ErrPromptRejected.
type ImageGenerator interface {
	Generate(ctx context.Context, req ImageRequest) ([]string, error)
}
