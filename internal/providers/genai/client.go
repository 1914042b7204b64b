package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"
)

const completionTimeout = 12 * time.Second

// ErrNoCandidates indicates the endpoint answered successfully but produced
// no candidates. Callers treat this differently from a failed call.
var ErrNoCandidates = errors.New("no candidates in AI response")

// Client is a thin wrapper over an OpenAI-compatible text endpoint. The base
// URL and model are configurable so any compatible provider can back it.
type Client struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewClient(apiKey, baseURL, model string, logger *slog.Logger) *Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger.With("component", "genai-client"),
	}
}

// Generate sends the prompt as the sole user message and returns the first
// candidate's text. A single attempt, bounded by the completion timeout.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Error("AI completion failed", "error", err)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("AI completion returned no candidates")
		return "", ErrNoCandidates
	}

	return resp.Choices[0].Message.Content, nil
}
