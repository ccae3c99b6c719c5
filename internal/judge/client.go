// Package judge implements the LLM-as-judge protocol: grading an obtained
// answer against an expected answer on five fixed criteria.
package judge

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Client abstracts the OpenAI-compatible chat-completion API used for
// judging.
type Client interface {
	// ChatCompletion sends a chat completion request and returns the reply.
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatRequest is a single-turn completion request. The judge protocol uses
// one user-role message carrying the full grading prompt.
type ChatRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// ChatResponse holds the first choice's message content.
type ChatResponse struct {
	Content string
}

// OpenAIClient implements Client against any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a judge transport client.
func NewOpenAIClient(opts ...Option) *OpenAIClient {
	cfg := &clientConfig{
		apiKey: "not-needed",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	config := openai.DefaultConfig(cfg.apiKey)
	if cfg.baseURL != "" {
		config.BaseURL = cfg.baseURL
	}

	return &OpenAIClient{client: openai.NewClientWithConfig(config)}
}

// ChatCompletion sends a non-streaming request with a single user message.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &TransportError{Err: fmt.Errorf("no choices returned")}
	}

	return &ChatResponse{Content: resp.Choices[0].Message.Content}, nil
}
