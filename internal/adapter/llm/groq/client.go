// Package groq implements the completion-service client against the Groq
// OpenAI-compatible chat API. It serves both the model-based query extractor
// and the response summarizer.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// DefaultBaseURL is the Groq API endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Completion request parameters fixed by contract.
const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 500
)

// Client sends single-message chat completions.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given model against the public endpoint.
func New(apiKey, model string, timeout time.Duration, log zerolog.Logger) *Client {
	return NewWithBaseURL(DefaultBaseURL, apiKey, model, timeout, log)
}

// NewWithBaseURL creates a Client against a custom endpoint, used in tests.
func NewWithBaseURL(baseURL, apiKey, model string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Wire shapes of the chat completion exchange.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message and returns the text
// of the first choice. A missing API key fails softly with
// ErrMissingCredential.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: GROQ_API_KEY", domain.ErrMissingCredential)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: completion: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("Completion API error")
		return "", fmt.Errorf("%w: completion: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: completion: %v", domain.ErrBadResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrBadResponse)
	}

	return parsed.Choices[0].Message.Content, nil
}
