package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type bedrockConfig struct {
	Region string `json:"region"`
}

// bedrockProvider invokes foundation models through the Bedrock runtime.
// Model families disagree on the request envelope: Anthropic models speak the
// chat-message format while Titan text models take a plain completion body,
// so both are normalized here and callers only ever see raw text.
type bedrockProvider struct {
	client *bedrockruntime.Client
}

func (p *bedrockProvider) Name() string {
	return "bedrock"
}

func (p *bedrockProvider) Generate(ctx context.Context, model string, prompt string, opts GenerateOptions) (string, error) {
	body, err := buildBedrockTextRequest(model, prompt, opts)
	if err != nil {
		return "", err
	}
	out, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invoke model %s: %w", model, err)
	}
	text, err := parseBedrockTextResponse(model, out.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

type anthropicMessage struct {
	Role    string                 `json:"role"`
	Content []anthropicContentPart `json:"content"`
}

type anthropicContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int32              `json:"max_tokens"`
	Temperature      float32            `json:"temperature"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []anthropicContentPart `json:"content"`
}

type titanTextRequest struct {
	InputText            string          `json:"inputText"`
	TextGenerationConfig titanTextConfig `json:"textGenerationConfig"`
}

type titanTextConfig struct {
	MaxTokenCount int32   `json:"maxTokenCount"`
	Temperature   float32 `json:"temperature"`
}

type titanTextResponse struct {
	Results []struct {
		OutputText string `json:"outputText"`
	} `json:"results"`
}

func isChatWrappedModel(model string) bool {
	return strings.Contains(model, "anthropic.")
}

func buildBedrockTextRequest(model string, prompt string, opts GenerateOptions) ([]byte, error) {
	if isChatWrappedModel(model) {
		return json.Marshal(anthropicRequest{
			AnthropicVersion: "bedrock-2023-05-31",
			MaxTokens:        opts.MaxTokens,
			Temperature:      opts.Temperature,
			Messages: []anthropicMessage{{
				Role:    "user",
				Content: []anthropicContentPart{{Type: "text", Text: prompt}},
			}},
		})
	}
	return json.Marshal(titanTextRequest{
		InputText: prompt,
		TextGenerationConfig: titanTextConfig{
			MaxTokenCount: opts.MaxTokens,
			Temperature:   opts.Temperature,
		},
	})
}

func parseBedrockTextResponse(model string, body []byte) (string, error) {
	if isChatWrappedModel(model) {
		var resp anthropicResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("decode model response: %w", err)
		}
		if len(resp.Content) == 0 {
			return "", fmt.Errorf("model response has no content")
		}
		return resp.Content[0].Text, nil
	}
	var resp titanTextResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("model response has no results")
	}
	return resp.Results[0].OutputText, nil
}

func createBedrockFactory(args interface{}) (Provider, error) {
	cfg := &bedrockConfig{}
	if err := decodeConfig(args, cfg); err != nil {
		return nil, err
	}
	awsCfg, err := LoadAWSConfig(context.Background(), cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &bedrockProvider{client: bedrockruntime.NewFromConfig(awsCfg)}, nil
}

func init() {
	Register("bedrock", createBedrockFactory)
}
