package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// SamplingConfig holds the sampling parameters for one generation call.
type SamplingConfig struct {
	Temperature float32
	MaxTokens   int
}

// Generator produces a text completion for a prompt. Implementations make
// exactly one attempt per call; recovery policy belongs to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error)
}

// OpenAIGenerator calls an OpenAI-compatible chat completion endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	stats  *Stats
}

// NewOpenAIGenerator builds a generator against the given endpoint. An empty
// baseURL targets the default OpenAI API.
func NewOpenAIGenerator(baseURL, apiKey, model string, stats *Stats) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		stats:  stats,
	}
}

// Model returns the configured model identifier.
func (g *OpenAIGenerator) Model() string {
	return g.model
}

// Stats returns the latency tracker, which may be nil.
func (g *OpenAIGenerator) Stats() *Stats {
	return g.stats
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if g.stats != nil {
		g.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
