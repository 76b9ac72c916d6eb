// Package llm wraps an OpenAI-compatible completion endpoint. The default
// base URL targets a local Ollama server, which exposes the same API shape.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL     = "http://localhost:11434/v1"
	DefaultModel       = "llama3.1"
	DefaultTimeoutSecs = 60
)

// Config controls the completion endpoint and sampling defaults.
type Config struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutSecs int     `yaml:"timeout_seconds"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIKey == "" {
		// Ollama ignores the key but the SDK requires one.
		c.APIKey = "ollama"
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.1
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 300
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

// Client issues non-streaming chat completions.
type Client struct {
	api openai.Client
	cfg Config
	log zerolog.Logger
}

// NewClient creates a completion client for the configured endpoint.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	cfg = cfg.withDefaults()
	api := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return &Client{
		api: api,
		cfg: cfg,
		log: log.With().Str("component", "llm").Str("model", cfg.Model).Logger(),
	}
}

// Complete sends a single-user-message prompt and returns the reply text.
// Generation is slow on local models, so the call carries a long timeout.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
	defer cancel()

	req := openai.ChatCompletionNewParams{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if c.cfg.Temperature > 0 {
		req.Temperature = openai.Float(c.cfg.Temperature)
	}
	if c.cfg.MaxTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(c.cfg.MaxTokens))
	}

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	reply := resp.Choices[0].Message.Content
	c.log.Debug().
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Int("reply_chars", len(reply)).
		Msg("Completion finished")
	return strings.TrimSpace(reply), nil
}
