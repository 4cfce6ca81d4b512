// Package openai is a generation client for OpenAI-compatible chat
// completion endpoints. It asks for a JSON object response and returns the
// message content unparsed beyond validation.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/prize2pride-backend/internal/provider"
)

const (
	name              = "openai"
	completionsPath   = "/v1/chat/completions"
	maxErrBodyExcerpt = 512
)

// Config holds client settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	// Timeout bounds one Generate call including reading the body.
	Timeout time.Duration
}

// Client calls the chat completions endpoint. It never retries; retry
// policy belongs to the caller.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	maxTokens  int
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + completionsPath,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		log:        logger.With("adapter", name),
	}
}

// Generate sends one system + user message pair and returns the response
// content as a JSON object. Failures are *provider.Error.
func (c *Client) Generate(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:      c.maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Transport(name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Transport(name, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "completion request rejected",
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
		)
		return nil, provider.FromStatus(name, resp.StatusCode, resp.Header, provider.Excerpt(body, maxErrBodyExcerpt))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, provider.Malformed(name, fmt.Errorf("decode envelope: %w", err))
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == nil {
		return nil, provider.Malformed(name, errors.New("missing choices[0].message.content"))
	}

	content, err := provider.JSONObject(name, *out.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "completion received",
		slog.String("model", out.Model),
		slog.Int("completion_tokens", out.Usage.CompletionTokens),
		slog.Duration("elapsed", time.Since(start)),
	)
	return content, nil
}
