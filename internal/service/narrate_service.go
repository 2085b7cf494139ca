package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/model"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

type NarrateService struct {
	speech capability.SpeechSynthesizer
}

func NewNarrateService(speech capability.SpeechSynthesizer) *NarrateService {
	return &NarrateService{speech: speech}
}

func (s *NarrateService) Narrate(ctx context.Context, input string) (model.Narration, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return model.Narration{}, fmt.Errorf("%w: text is required", appErr.ErrInvalid)
	}
	audio, err := s.speech.Synthesize(ctx, text)
	if err != nil {
		logutil.GetLogger(ctx).Error("speech synthesis failed",
			zap.Int("text_len", len(text)), zap.Error(err))
		return model.Narration{}, fmt.Errorf("synthesize narration: %w", appErr.ErrCapability)
	}
	if len(audio) == 0 {
		logutil.GetLogger(ctx).Error("speech synthesis returned empty audio",
			zap.Int("text_len", len(text)))
		return model.Narration{}, fmt.Errorf("empty narration audio: %w", appErr.ErrCapability)
	}
	return model.Narration{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
	}, nil
}
