package inference

import (
	"fmt"
	"os"
)

// Environment variables carrying the required credentials. Both Hugging
// Face features use separate keys, matching the two hosted endpoints.
const (
	EnvQAKey      = "HUGGINGFACE_QA_KEY"
	EnvSummaryKey = "HUGGINGFACE_SUMMARY_KEY"
	EnvOpenAIKey  = "OPENAI_API_KEY"
)

// NewAnswerer creates an Answerer for the given provider type.
// Supported provider types: "huggingface", "openai".
func NewAnswerer(providerType string, model string) (Answerer, error) {
	switch providerType {
	case "huggingface":
		apiKey := os.Getenv(EnvQAKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set", EnvQAKey)
		}
		return NewHuggingFaceAnswerer(apiKey, model, ""), nil

	case "openai":
		apiKey := os.Getenv(EnvOpenAIKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set", EnvOpenAIKey)
		}
		return NewOpenAIProvider(apiKey, model, ""), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

// NewSummarizer creates a Summarizer for the given provider type.
// Supported provider types: "huggingface", "openai". models is the
// fallback list for the Hugging Face provider; only the first entry is
// used for OpenAI.
func NewSummarizer(providerType string, models []string) (Summarizer, error) {
	switch providerType {
	case "huggingface":
		apiKey := os.Getenv(EnvSummaryKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set", EnvSummaryKey)
		}
		return NewHuggingFaceSummarizer(apiKey, models, ""), nil

	case "openai":
		apiKey := os.Getenv(EnvOpenAIKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set", EnvOpenAIKey)
		}
		model := "gpt-4o-mini"
		if len(models) > 0 {
			model = models[0]
		}
		return NewOpenAIProvider(apiKey, model, ""), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
