package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/model"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

type QAService struct {
	gen       capability.Generator
	maxTokens int32
	timeout   time.Duration
}

func NewQAService(gen capability.Generator, maxTokens int, timeout time.Duration) *QAService {
	return &QAService{gen: gen, maxTokens: int32(maxTokens), timeout: timeout}
}

// Ask answers a question grounded in the supplied context. The context may
// be empty; the question may not. The answer passes through verbatim.
func (s *QAService) Ask(ctx context.Context, docContext, question string) (model.QAExchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.QAExchange{}, fmt.Errorf("%w: question is required", appErr.ErrInvalid)
	}
	docContext = strings.TrimSpace(docContext)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	prompt := buildQAPrompt(docContext, question)
	answer, err := s.gen.Generate(ctx, prompt, capability.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		logutil.GetLogger(ctx).Error("qa generation failed", zap.Error(err))
		return model.QAExchange{}, fmt.Errorf("generate answer: %w", appErr.ErrCapability)
	}
	return model.QAExchange{
		Question: question,
		Answer:   strings.TrimSpace(answer),
	}, nil
}

func buildQAPrompt(docContext, question string) string {
	return fmt.Sprintf(`You are a helpful tutor for students with learning differences.
Answer in short, encouraging, plain-language sentences. Base your answer on the
material below; if the material doesn't cover the question, say so kindly and
give a simple general answer.

MATERIAL:
%s

QUESTION:
%s`, docContext, question)
}
