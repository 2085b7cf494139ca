package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/model"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

const (
	// visualPromptLimit is the hard ceiling the image backend enforces on
	// the composed prompt.
	visualPromptLimit = 512

	visualPreamble = "A simple, friendly illustration for a children's learning guide: "
	visualSuffix   = ". Flat colors, bold shapes, calm scene."

	visualNegativePrompt = "text, letters, numbers, words, human faces, photorealism"

	// visualBoundaryRatio bounds how far back truncation may walk to find
	// a word boundary.
	visualBoundaryRatio = 0.7

	visualTitle       = "Your Visual Story"
	visualDescription = "An illustration generated from the simplified text."
)

type VisualService struct {
	images capability.ImageGenerator
}

func NewVisualService(images capability.ImageGenerator) *VisualService {
	return &VisualService{images: images}
}

func (s *VisualService) Visualize(ctx context.Context, input string) (model.Visual, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return model.Visual{}, fmt.Errorf("%w: simplified_text is required", appErr.ErrInvalid)
	}
	prompt := BuildVisualPrompt(text)
	images, err := s.images.Generate(ctx, capability.ImageRequest{
		Prompt:         prompt,
		NegativePrompt: visualNegativePrompt,
		Count:          1,
		Width:          512,
		Height:         512,
		Quality:        "standard",
		GuidanceScale:  8,
	})
	if err != nil {
		if appErr.IsClientFault(err) {
			return model.Visual{}, err
		}
		logutil.GetLogger(ctx).Error("image generation failed",
			zap.Int("prompt_len", len(prompt)), zap.Error(err))
		return model.Visual{}, fmt.Errorf("generate image: %w", appErr.ErrCapability)
	}
	return model.Visual{
		Title:       visualTitle,
		Description: visualDescription,
		ImageBase64: images[0],
	}, nil
}

// BuildVisualPrompt composes preamble + content + suffix and keeps the total
// within visualPromptLimit. Over-budget content is cut at the last space at
// or after 70% of the content budget; with no such boundary it is hard-cut.
func BuildVisualPrompt(content string) string {
	budget := visualPromptLimit - len(visualPreamble) - len(visualSuffix)
	if len(content) > budget {
		cut := content[:budget]
		floor := int(float64(budget) * visualBoundaryRatio)
		if idx := strings.LastIndex(cut, " "); idx >= floor {
			cut = cut[:idx]
		}
		content = strings.TrimSpace(cut)
	}
	return visualPreamble + content + visualSuffix
}
