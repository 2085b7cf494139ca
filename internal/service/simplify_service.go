package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/ainable/backend/internal/capability"
	"github.com/ainable/backend/internal/model"
	appErr "github.com/ainable/backend/internal/pkg/errors"
)

// generationTemperature is fixed across every text-generation call.
const generationTemperature = 0.7

// simplifyFallbackText is returned when model output cannot be recovered as
// structured JSON. A degraded result is still a successful response.
const simplifyFallbackText = "Sorry, I couldn't simplify this text right now. Please try again in a moment."

type SimplifyService struct {
	gen       capability.Generator
	maxTokens int32
	timeout   time.Duration
}

func NewSimplifyService(gen capability.Generator, maxTokens int, timeout time.Duration) *SimplifyService {
	return &SimplifyService{gen: gen, maxTokens: int32(maxTokens), timeout: timeout}
}

func (s *SimplifyService) Simplify(ctx context.Context, input string) (model.Simplification, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return model.Simplification{}, fmt.Errorf("%w: text is required", appErr.ErrInvalid)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	prompt := buildSimplifyPrompt(text)
	raw, err := s.gen.Generate(ctx, prompt, capability.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		logutil.GetLogger(ctx).Error("simplify generation failed", zap.Error(err))
		return model.Simplification{}, fmt.Errorf("generate simplification: %w", appErr.ErrCapability)
	}
	result, ok := parseSimplification(raw)
	if !ok {
		logutil.GetLogger(ctx).Warn("model output was not parseable json, degrading",
			zap.Int("raw_len", len(raw)))
	}
	return result, nil
}

func buildSimplifyPrompt(text string) string {
	return fmt.Sprintf(`You help students with learning differences understand written material.
Rewrite the text below in short, plain sentences that a young reader can follow.

TEXT:
%s

Respond with a single JSON object with exactly these keys:
- "simplified_text": the rewritten text as one string
- "key_terms": an array of objects, each with "term" and "definition"
- "step_by_step": an array of strings explaining the ideas one step at a time

Output ONLY the JSON object. No prose, no markdown, nothing outside the {...}.`, text)
}

type simplificationPayload struct {
	SimplifiedText *string          `json:"simplified_text"`
	KeyTerms       *[]model.KeyTerm `json:"key_terms"`
	StepByStep     *[]string        `json:"step_by_step"`
}

func (p *simplificationPayload) complete() bool {
	return p.SimplifiedText != nil && p.KeyTerms != nil && p.StepByStep != nil
}

func (p *simplificationPayload) toModel() model.Simplification {
	result := model.Simplification{
		SimplifiedText: strings.TrimSpace(*p.SimplifiedText),
		KeyTerms:       *p.KeyTerms,
		StepByStep:     *p.StepByStep,
	}
	if result.KeyTerms == nil {
		result.KeyTerms = []model.KeyTerm{}
	}
	if result.StepByStep == nil {
		result.StepByStep = []string{}
	}
	return result
}

// parseSimplification recovers a structured result from raw model output.
// Tier 1 parses the whole body as JSON. Tier 2 strips markdown fences and
// takes the greedy span from the first '{' to the last '}'. Tier 3 is the
// fixed fallback; parse failures never propagate to the caller.
func parseSimplification(raw string) (model.Simplification, bool) {
	clean := strings.TrimSpace(raw)

	var payload simplificationPayload
	if err := json.Unmarshal([]byte(clean), &payload); err == nil && payload.complete() {
		return payload.toModel(), true
	}

	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		payload = simplificationPayload{}
		if err := json.Unmarshal([]byte(clean[start:end+1]), &payload); err == nil && payload.complete() {
			return payload.toModel(), true
		}
	}

	return model.Simplification{
		SimplifiedText: simplifyFallbackText,
		KeyTerms:       []model.KeyTerm{},
		StepByStep:     []string{},
	}, false
}
