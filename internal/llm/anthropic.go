// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultModel is the model used when no override is provided.
	DefaultModel = "claude-sonnet-4-5-20250929"

	// defaultMaxTokens bounds a brief; it is a few paragraphs at most.
	defaultMaxTokens = 1024

	// defaultMaxRetries is the number of automatic retries on 429 and 5xx
	// responses. The SDK handles backoff.
	defaultMaxRetries = 3

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv = "ANTHROPIC_API_KEY"
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("llm: " + APIKeyEnv + " not set and no API key provided")

// AnthropicProvider implements Provider using the official Anthropic SDK.
type AnthropicProvider struct {
	client     anthropic.Client
	model      string
	maxRetries int
}

var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures an AnthropicProvider.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

// WithAPIKey sets the API key. If not provided, the provider reads
// ANTHROPIC_API_KEY from the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests. An empty model
// keeps the default.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.baseURL = url
	}
}

// WithMaxRetries sets the maximum number of retries for transient errors.
func WithMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) {
		c.maxRetries = n
	}
}

// NewAnthropicProvider creates a new Anthropic provider.
// It returns ErrNoAPIKey if no API key is available.
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	cfg := anthropicConfig{
		model:      DefaultModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client:     anthropic.NewClient(clientOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(variant.Text)
		}
	}

	return &Response{
		Content: content.String(),
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the default model configured for this provider.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *AnthropicProvider) MaxRetries() int {
	return p.maxRetries
}
