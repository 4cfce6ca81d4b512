// Package anthropic is a generation client backed by the Anthropic Messages
// API. Claude does not offer a JSON response mode, so the object is cut
// out of the first text block.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/prize2pride-backend/internal/provider"
)

const (
	name         = "anthropic"
	defaultModel = "claude-sonnet-4-5"
)

// Config holds client settings. An empty BaseURL uses the SDK default.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client wraps the SDK client. SDK-level retries are disabled.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", name),
	}
}

// Generate sends system and prompt and returns the JSON object found in the
// reply's first text block.
func (c *Client) Generate(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, classify(err)
	}

	var text string
	found := false
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			found = true
			break
		}
	}
	if !found {
		return nil, provider.Malformed(name, errors.New("no text block in response"))
	}

	obj, err := provider.ExtractJSONObject(name, text)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "message received",
		slog.String("model", string(msg.Model)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("elapsed", time.Since(start)),
	)
	return obj, nil
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		var header http.Header
		if apiErr.Response != nil {
			header = apiErr.Response.Header
		}
		pe := provider.FromStatus(name, apiErr.StatusCode, header, "")
		pe.Err = err
		return pe
	}
	return provider.Transport(name, fmt.Errorf("messages.new: %w", err))
}
