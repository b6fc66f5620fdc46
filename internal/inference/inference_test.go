package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetryPolicyStopsOnSuccess(t *testing.T) {
	var calls int
	p := RetryPolicy{Attempts: 3, Delay: time.Millisecond}
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestRetryPolicyExhaustsAndReturnsLastError(t *testing.T) {
	var calls int
	p := RetryPolicy{Attempts: 3, Delay: time.Millisecond}
	err := p.Do(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil || err.Error() != "permanent" {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", calls)
	}
}

func TestRetryPolicyHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := RetryPolicy{Attempts: 5, Delay: time.Minute}
	err := p.Do(ctx, func() error { return errors.New("fail") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHuggingFaceAnswerer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if !strings.HasSuffix(r.URL.Path, DefaultQAModel) {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req hfQARequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Inputs.Question != "What is osmosis?" {
			t.Errorf("unexpected question: %q", req.Inputs.Question)
		}
		if req.Inputs.Context == "" {
			t.Error("expected non-empty context")
		}

		json.NewEncoder(w).Encode(hfQAResponse{Answer: "movement of water", Score: 0.93})
	}))
	defer srv.Close()

	a := NewHuggingFaceAnswerer("test-key", "", srv.URL)
	answer, err := a.Answer(context.Background(), "What is osmosis?", "Osmosis is the movement of water.")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if answer.Text != "movement of water" {
		t.Errorf("unexpected answer: %q", answer.Text)
	}
	if answer.Score != 0.93 {
		t.Errorf("unexpected score: %v", answer.Score)
	}
}

func TestHuggingFaceAnswererRetriesOnFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(hfQAResponse{Answer: "retried", Score: 0.5})
	}))
	defer srv.Close()

	a := NewHuggingFaceAnswerer("test-key", "", srv.URL)
	a.retry = RetryPolicy{Attempts: 3, Delay: time.Millisecond}

	answer, err := a.Answer(context.Background(), "q?", "some material")
	if err != nil {
		t.Fatalf("Answer after retries: %v", err)
	}
	if answer.Text != "retried" {
		t.Errorf("unexpected answer: %q", answer.Text)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("expected 3 calls, got %d", n)
	}
}

func TestHuggingFaceAnswererEmptyAnswerFallbackText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(hfQAResponse{})
	}))
	defer srv.Close()

	a := NewHuggingFaceAnswerer("test-key", "", srv.URL)
	answer, err := a.Answer(context.Background(), "q?", "material")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if answer.Text != "No answer found." {
		t.Errorf("expected fallback text, got %q", answer.Text)
	}
}

func TestHuggingFaceSummarizerModelFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First model always fails; second succeeds.
		if strings.Contains(r.URL.Path, "primary-model") {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode([]hfSummaryItem{{SummaryText: "short version"}})
	}))
	defer srv.Close()

	s := NewHuggingFaceSummarizer("test-key", []string{"primary-model", "backup-model"}, srv.URL)
	s.retry = RetryPolicy{Attempts: 2, Delay: time.Millisecond}

	summary, err := s.Summarize(context.Background(), "long study notes go here")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Text != "short version" {
		t.Errorf("unexpected summary: %q", summary.Text)
	}
	if summary.Model != "backup-model" {
		t.Errorf("expected backup-model, got %q", summary.Model)
	}
}

func TestHuggingFaceSummarizerAllModelsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHuggingFaceSummarizer("test-key", []string{"m1", "m2"}, srv.URL)
	s.retry = RetryPolicy{Attempts: 2, Delay: time.Millisecond}

	_, err := s.Summarize(context.Background(), "notes")
	if err == nil {
		t.Fatal("expected error when all models fail")
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	t.Setenv(EnvQAKey, "")
	t.Setenv(EnvSummaryKey, "")
	t.Setenv(EnvOpenAIKey, "")

	if _, err := NewAnswerer("huggingface", ""); err == nil {
		t.Error("expected error for huggingface answerer with missing key")
	}
	if _, err := NewSummarizer("huggingface", nil); err == nil {
		t.Error("expected error for huggingface summarizer with missing key")
	}
	if _, err := NewAnswerer("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error for openai answerer with missing key")
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	if _, err := NewAnswerer("unknown", ""); err == nil {
		t.Error("expected error for unknown answerer provider")
	}
	if _, err := NewSummarizer("unknown", nil); err == nil {
		t.Error("expected error for unknown summarizer provider")
	}
}

type stubAnswerer struct{ calls int32 }

func (s *stubAnswerer) Name() string { return "stub" }

func (s *stubAnswerer) Answer(ctx context.Context, question, material string) (*Answer, error) {
	atomic.AddInt32(&s.calls, 1)
	return &Answer{Text: "ok"}, nil
}

func TestRateLimitedAnswererPassesThrough(t *testing.T) {
	stub := &stubAnswerer{}
	limited := NewRateLimitedAnswerer(stub, 60)

	for i := 0; i < 5; i++ {
		if _, err := limited.Answer(context.Background(), "q", "m"); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	if n := atomic.LoadInt32(&stub.calls); n != 5 {
		t.Errorf("expected 5 calls, got %d", n)
	}
}

func TestRateLimitedAnswererBlocksWhenExhausted(t *testing.T) {
	stub := &stubAnswerer{}
	limited := NewRateLimitedAnswerer(stub, 1)

	if _, err := limited.Answer(context.Background(), "q", "m"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Bucket is empty; a canceled context must abort the wait.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := limited.Answer(ctx, "q", "m")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
