package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient implements LLMClient using the Anthropic Messages API.
type anthropicClient struct {
	cfg      LLMConfig
	inner    anthropic.Client
	model    anthropic.Model
	observer Observer
}

// NewAnthropicClient creates an LLMClient backed by the Anthropic API.
// cfg.APIKey is required; cfg.Endpoint, when set, overrides the base URL.
func NewAnthropicClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic api key is not set (run `studyplan apikey set` or export ANTHROPIC_API_KEY)")
	}

	// withRetry owns retries.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}

	return &anthropicClient{
		cfg:      cfg,
		inner:    anthropic.NewClient(opts...),
		model:    model,
		observer: observer,
	}, nil
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	temp, maxTok := c.cfg.taskParams(req.Task, req.Temperature, req.MaxTokens)

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   int64(maxTok),
		Temperature: anthropic.Float(temp),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	resp, err := withRetry(ctx, c.cfg, func() (*anthropic.Message, error) {
		return c.inner.Messages.New(ctx, params)
	})
	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(LLMCallEvent{
		Provider:  ProviderAnthropic,
		Task:      req.Task,
		Model:     string(c.model),
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	return &GenerateResponse{
		Text:      text.String(),
		Model:     string(resp.Model),
		LatencyMs: latency,
	}, nil
}

// Available reports whether a key is configured; the API has no cheap
// unauthenticated health check.
func (c *anthropicClient) Available(context.Context) bool {
	return c.cfg.APIKey != ""
}
