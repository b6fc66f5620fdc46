package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHFPipelineURL = "https://api-inference.huggingface.co/pipeline/feature-extraction"

// DefaultHFEmbeddingModel is a small sentence-transformers model suited to
// short study notes.
const DefaultHFEmbeddingModel = "sentence-transformers/all-MiniLM-L6-v2"

// HuggingFaceEmbedder generates embeddings via the Hugging Face hosted
// feature-extraction pipeline.
type HuggingFaceEmbedder struct {
	baseURL    string
	apiKey     string
	model      string
	dimensions int
	httpClient *http.Client
}

// NewHuggingFaceEmbedder creates an embedder for the given model. baseURL
// defaults to the public pipeline endpoint when empty; model defaults to
// DefaultHFEmbeddingModel (384 dimensions).
func NewHuggingFaceEmbedder(apiKey, model, baseURL string) *HuggingFaceEmbedder {
	if baseURL == "" {
		baseURL = defaultHFPipelineURL
	}
	dimensions := 384
	if model == "" {
		model = DefaultHFEmbeddingModel
	}
	return &HuggingFaceEmbedder{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		dimensions: dimensions,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *HuggingFaceEmbedder) Name() string {
	return "huggingface/" + e.model
}

func (e *HuggingFaceEmbedder) Dimensions() int {
	return e.dimensions
}

type hfEmbedRequest struct {
	Inputs []string `json:"inputs"`
}

func (e *HuggingFaceEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(hfEmbedRequest{Inputs: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/"+e.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create embedding request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embedding endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var vectors [][]float32
	if err := json.NewDecoder(resp.Body).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("endpoint returned %d embeddings, expected %d", len(vectors), len(texts))
	}
	return vectors, nil
}
