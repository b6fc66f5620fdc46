package inference

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Answerer and Summarizer using the OpenAI Chat
// Completions API. Any OpenAI-compatible endpoint works via baseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider for the given model. baseURL may be
// empty for the public API.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai/" + p.model
}

func (p *OpenAIProvider) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   1024,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *OpenAIProvider) Answer(ctx context.Context, question, material string) (*Answer, error) {
	system := "You answer study questions strictly from the provided material. " +
		"Reply with the answer only, no preamble. If the material does not " +
		"contain the answer, reply exactly: No answer found."
	user := fmt.Sprintf("Material:\n%s\n\nQuestion: %s", material, question)

	content, err := p.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return &Answer{Text: content, Model: p.model}, nil
}

func (p *OpenAIProvider) Summarize(ctx context.Context, text string) (*Summary, error) {
	system := "You summarize study notes into a short, dense paragraph. " +
		"Keep every key fact; drop filler."

	content, err := p.complete(ctx, system, text)
	if err != nil {
		return nil, err
	}
	return &Summary{Text: content, Model: p.model}, nil
}
