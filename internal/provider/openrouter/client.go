// Package openrouter provides the chat-completion client for the OpenRouter
// API. It builds the request body by hand, performs a single HTTPS POST per
// call, and extracts the first choice's message text from the response.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pagi-sec/pagi/internal/domain"
	"github.com/pagi-sec/pagi/internal/observability"
)

const (
	chatCompletionsPath = "/chat/completions"

	// maxErrorBodyBytes bounds how much of a failed response body is kept
	// in the returned error.
	maxErrorBodyBytes = 2048

	// Attribution headers recommended by OpenRouter; harmless if the
	// values are generic.
	refererHeader = "https://localhost"
	titleHeader   = "pagi"
)

// Client performs chat-completion calls against OpenRouter.
// It is safe for concurrent use; the only shared state is the immutable
// configuration and the HTTP client's own connection pool.
type Client struct {
	apiKey       string
	defaultModel string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates a new OpenRouter client from an already-loaded
// configuration.
func NewClient(config *Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenRouter API key is required")
	}

	return &Client{
		apiKey:       config.APIKey,
		defaultModel: config.DefaultModel,
		baseURL:      config.BaseURL,
		// TODO: set a default request timeout; callers currently bound
		// calls through ctx only.
		httpClient: &http.Client{},
	}, nil
}

// GenerateResponse sends one chat-completion request and returns the first
// choice's message text verbatim. When model is empty the configured default
// model is used. Exactly one outbound call is made per invocation; there are
// no retries and nothing is cached.
func (c *Client) GenerateResponse(ctx context.Context, prompt, systemPrompt, model string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt cannot be empty")
	}

	effectiveModel := model
	if effectiveModel == "" {
		effectiveModel = c.defaultModel
	}

	// Message order is conversational order: system turn first, user turn
	// second.
	reqBody, err := json.Marshal(domain.ChatRequest{
		Model: effectiveModel,
		Messages: []domain.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+chatCompletionsPath,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", refererHeader)
	httpReq.Header.Set("X-Title", titleHeader)

	logger := observability.FromContext(ctx)
	logger.Debug("calling chat completions API", zap.String("model", effectiveModel))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		apiErr := &domain.APIStatusError{StatusCode: resp.StatusCode, Body: string(body)}
		logger.Error("chat completions API call failed", zap.Int("status", resp.StatusCode))
		return "", apiErr
	}

	var chatResp domain.ChatResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&chatResp); decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if len(chatResp.Choices) == 0 {
		return "", domain.ErrNoChoices
	}

	return chatResp.Choices[0].Message.Content, nil
}
