package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ravikh-dev/studykit/internal/config"
	"github.com/ravikh-dev/studykit/internal/embeddings"
	"github.com/ravikh-dev/studykit/internal/inference"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `studykit init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createAnswererFromConfig builds the QA provider named by the config,
// wrapped in a rate limiter when requests_per_minute is set.
func createAnswererFromConfig(cfg *config.Config) (inference.Answerer, error) {
	answerer, err := inference.NewAnswerer(string(cfg.Provider), cfg.QAModel)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute > 0 {
		answerer = inference.NewRateLimitedAnswerer(answerer, cfg.RequestsPerMinute)
	}
	return answerer, nil
}

// createSummarizerFromConfig builds the summarization provider named by the
// config, wrapped in a rate limiter when requests_per_minute is set.
func createSummarizerFromConfig(cfg *config.Config) (inference.Summarizer, error) {
	summarizer, err := inference.NewSummarizer(string(cfg.Provider), cfg.SummaryModels)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute > 0 {
		summarizer = inference.NewRateLimitedSummarizer(summarizer, cfg.RequestsPerMinute)
	}
	return summarizer, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// Shared by the serve, import, search, and mcp commands.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(inference.EnvOpenAIKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is required for OpenAI embeddings", inference.EnvOpenAIKey)
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(cfg.EmbeddingModel)), nil
	default:
		// Hugging Face embeddings reuse the QA credential.
		apiKey := os.Getenv(inference.EnvQAKey)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is required for Hugging Face embeddings", inference.EnvQAKey)
		}
		return embeddings.NewHuggingFaceEmbedder(apiKey, cfg.EmbeddingModel, ""), nil
	}
}

// readInput returns the text to operate on: the --file contents when set,
// otherwise everything on stdin. Both sources are whitespace-trimmed and
// must be non-empty.
func readInput(file string) (string, error) {
	var data []byte
	var err error
	if file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input: pass --file or pipe text on stdin")
	}
	return text, nil
}
