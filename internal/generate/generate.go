// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns prompts into text through a chat-completion API.
// Generator abstracts the API so the presentation stage can be tested with
// a fake; OpenAI is the shipped implementation.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-spotlight/internal/httputil"
	"github.com/pdiddy/paper-spotlight/pkg/types"
)

// ErrEmptyResponse means the API answered 200 but produced no text.
var ErrEmptyResponse = errors.New("empty response from text generator")

// Options tunes a single completion.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Generator produces text for one prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// openaiAPIBase is the chat-completions endpoint. Declared as a var so
// tests can substitute an httptest server.
var openaiAPIBase = "https://api.openai.com/v1/chat/completions"

const openaiService = "OpenAI API"

// OpenAI calls the OpenAI chat-completions API with one user message.
type OpenAI struct {
	Client *http.Client
	Config types.GeneratorConfig
	APIKey string
	Logger *slog.Logger
}

// NewOpenAI returns an OpenAI generator. The API key is required.
func NewOpenAI(cfg types.GeneratorConfig, apiKey string, logger *slog.Logger) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OpenAI API key not set (export OPENAI_API_KEY, add it to .env, or write .secrets/openai-api-key)")
	}
	if cfg.Model == "" {
		cfg.Model = types.DefaultConfig().Generator.Model
	}
	return &OpenAI{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		APIKey: apiKey,
		Logger: logger,
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends prompt and returns the trimmed completion text.
func (o *OpenAI) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.Config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := openaiAPIBase
	if o.Config.Endpoint != "" {
		endpoint = o.Config.Endpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	if o.Config.UserAgent != "" {
		req.Header.Set("User-Agent", o.Config.UserAgent)
	}

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := httputil.DoWithRetry(ctx, client, req, httputil.Policy{
		MaxRetries: o.Config.MaxRetries,
		Logger:     o.Logger,
	})
	if err != nil {
		return "", httputil.Transport(openaiService, err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(openaiService, resp); err != nil {
		return "", err
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing %s response: %w", openaiService, err)
	}
	if len(cr.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(cr.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
