// Package openai is a minimal chat-completions client for the assistant.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// ErrMessageRequired is returned when a completion is requested with an empty
// conversation.
var ErrMessageRequired = errors.New("message required")

// Message is one chat turn on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result carries the provider status and the first choice's message.
type Result struct {
	Status  int     `json:"status"`
	Message Message `json:"message"`
}

// Config bundles the client settings. SystemPrompt is prepended to every
// completion as the leading system message.
type Config struct {
	APIKey       string
	BaseURL      string
	Model        string
	SystemPrompt string
}

// Client talks to an OpenAI-compatible chat-completions endpoint behind a
// circuit breaker.
type Client struct {
	apiKey       string
	baseURL      string
	model        string
	systemPrompt string
	httpClient   *http.Client
	circuit      *gobreaker.CircuitBreaker
}

// NewClient creates a chat-completions client on top of a shared
// *http.Client.
func NewClient(httpClient *http.Client, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "chat-completions",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		model:        model,
		systemPrompt: cfg.SystemPrompt,
		httpClient:   httpClient,
		circuit:      cb,
	}
}

// chatRequest carries the fixed sampling parameters tuned for the WeatherBot
// persona: warm but not rambling, JSON-only output.
type chatRequest struct {
	Model            string         `json:"model"`
	Temperature      float64        `json:"temperature"`
	MaxTokens        int            `json:"max_tokens"`
	TopP             float64        `json:"top_p"`
	FrequencyPenalty float64        `json:"frequency_penalty"`
	PresencePenalty  float64        `json:"presence_penalty"`
	Stream           bool           `json:"stream"`
	ResponseFormat   responseFormat `json:"response_format"`
	Messages         []Message      `json:"messages"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatCompletion sends the persona prompt, the weather-context system message
// and the conversation history, and returns the model's reply. The reply
// content is nominally a JSON object; validating it is the caller's job.
func (c *Client) ChatCompletion(ctx context.Context, system Message, messages []Message) (*Result, error) {
	if len(messages) < 1 {
		return nil, ErrMessageRequired
	}

	body := chatRequest{
		Model:            c.model,
		Temperature:      0.7,
		MaxTokens:        1500,
		TopP:             0.9,
		FrequencyPenalty: 0.3,
		PresencePenalty:  0.1,
		Stream:           false,
		ResponseFormat:   responseFormat{Type: "json_object"},
		Messages:         append([]Message{{Role: "system", Content: c.systemPrompt}, system}, messages...),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var apiErr errorResponse
			_ = json.Unmarshal(raw, &apiErr)
			return nil, fmt.Errorf("chat completion error %s, status: %d", apiErr.Error.Message, resp.StatusCode)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	raw, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	return &Result{Status: http.StatusOK, Message: parsed.Choices[0].Message}, nil
}
