package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co/models"

// DefaultQAModel is the hosted extractive QA model used when none is
// configured.
const DefaultQAModel = "deepset/roberta-base-squad2"

// DefaultSummaryModels are tried in order until one returns a summary.
var DefaultSummaryModels = []string{
	"facebook/bart-large-cnn",
	"sshleifer/distilbart-cnn-12-6",
}

// hfPost sends a bearer-authenticated JSON POST to a Hugging Face model
// endpoint and decodes the response into out.
func hfPost(ctx context.Context, client *http.Client, url, apiKey string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// HuggingFaceAnswerer implements Answerer against the Hugging Face hosted
// inference API.
type HuggingFaceAnswerer struct {
	baseURL    string
	apiKey     string
	model      string
	retry      RetryPolicy
	httpClient *http.Client
}

// NewHuggingFaceAnswerer creates an answerer for the given model. baseURL
// defaults to the public inference API when empty; model defaults to
// DefaultQAModel.
func NewHuggingFaceAnswerer(apiKey, model, baseURL string) *HuggingFaceAnswerer {
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	if model == "" {
		model = DefaultQAModel
	}
	return &HuggingFaceAnswerer{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		retry:      DefaultRetry,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *HuggingFaceAnswerer) Name() string {
	return "huggingface/" + a.model
}

type hfQARequest struct {
	Inputs hfQAInputs `json:"inputs"`
}

type hfQAInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type hfQAResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

func (a *HuggingFaceAnswerer) Answer(ctx context.Context, question, material string) (*Answer, error) {
	payload := hfQARequest{Inputs: hfQAInputs{Question: question, Context: material}}

	var result hfQAResponse
	err := a.retry.Do(ctx, func() error {
		return hfPost(ctx, a.httpClient, a.baseURL+"/"+a.model, a.apiKey, payload, &result)
	})
	if err != nil {
		return nil, err
	}

	if result.Answer == "" {
		result.Answer = "No answer found."
	}

	return &Answer{
		Text:  result.Answer,
		Score: result.Score,
		Model: a.model,
	}, nil
}

// HuggingFaceSummarizer implements Summarizer against the Hugging Face
// hosted inference API, falling back through a list of models.
type HuggingFaceSummarizer struct {
	baseURL    string
	apiKey     string
	models     []string
	retry      RetryPolicy
	httpClient *http.Client
}

// NewHuggingFaceSummarizer creates a summarizer that tries each model in
// order. models defaults to DefaultSummaryModels when empty.
func NewHuggingFaceSummarizer(apiKey string, models []string, baseURL string) *HuggingFaceSummarizer {
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	if len(models) == 0 {
		models = DefaultSummaryModels
	}
	return &HuggingFaceSummarizer{
		baseURL: baseURL,
		apiKey:  apiKey,
		models:  models,
		// Each model gets a short-delay retry loop before falling through
		// to the next one.
		retry:      RetryPolicy{Attempts: 3, Delay: time.Second},
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *HuggingFaceSummarizer) Name() string {
	return "huggingface/summarization"
}

type hfSummaryRequest struct {
	Inputs string `json:"inputs"`
}

type hfSummaryItem struct {
	SummaryText string `json:"summary_text"`
}

func (s *HuggingFaceSummarizer) Summarize(ctx context.Context, text string) (*Summary, error) {
	payload := hfSummaryRequest{Inputs: text}

	var lastErr error
	for _, model := range s.models {
		var result []hfSummaryItem
		err := s.retry.Do(ctx, func() error {
			result = nil
			if err := hfPost(ctx, s.httpClient, s.baseURL+"/"+model, s.apiKey, payload, &result); err != nil {
				return err
			}
			if len(result) == 0 || result[0].SummaryText == "" {
				return fmt.Errorf("model %s returned no summary", model)
			}
			return nil
		})
		if err == nil {
			return &Summary{Text: result[0].SummaryText, Model: model}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("all summarization models failed: %w", lastErr)
}
