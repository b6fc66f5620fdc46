package mcp

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ravikh-dev/studykit/internal/inference"
	"github.com/ravikh-dev/studykit/internal/notes"
)

// stubSummarizer implements inference.Summarizer for testing.
type stubSummarizer struct {
	summary string
	err     error
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (*inference.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &inference.Summary{Text: s.summary, Model: "stub"}, nil
}

func (s *stubSummarizer) Name() string { return "stub" }

// stubEmbedder produces deterministic vectors from character counts.
type stubEmbedder struct{}

func (stubEmbedder) Name() string    { return "stub" }
func (stubEmbedder) Dimensions() int { return 4 }

func (stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		var vowels, consonants, spaces float32
		for _, r := range text {
			switch {
			case r == ' ':
				spaces++
			case r == 'a' || r == 'e' || r == 'i' || r == 'o' || r == 'u':
				vowels++
			default:
				consonants++
			}
		}
		vecs[i] = []float32{vowels + 1, consonants + 1, spaces + 1, float32(len(text)%7) + 1}
	}
	return vecs, nil
}

const quizNotes = "Photosynthesis converts light energy into chemical energy inside chloroplasts. " +
	"Cellular respiration breaks down glucose to release usable energy for the cell. " +
	"Mitochondria are the organelles responsible for producing most cellular ATP. " +
	"Osmosis is the passive movement of water across a semipermeable membrane. " +
	"Enzymes are protein catalysts that lower the activation energy of reactions."

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name string
		tool mcp.Tool
	}{
		{"summarize_notes", summarizeNotesTool},
		{"generate_quiz", generateQuizTool},
		{"generate_flashcards", generateFlashcardsTool},
		{"search_notes", searchNotesTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.name {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.name)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	summarizer := &stubSummarizer{summary: "short"}
	srv := NewServer(summarizer, nil)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.summarizer != summarizer {
		t.Error("summarizer not set correctly")
	}
}

func TestHandleSummarizeNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := NewServer(&stubSummarizer{summary: "the gist"}, nil)
		result, err := srv.handleSummarizeNotes(ctx, callReq(map[string]any{"text": quizNotes}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := textContent(t, result); got != "the gist" {
			t.Errorf("summary = %q, want %q", got, "the gist")
		}
	})

	t.Run("missing text", func(t *testing.T) {
		srv := NewServer(&stubSummarizer{summary: "x"}, nil)
		result, err := srv.handleSummarizeNotes(ctx, callReq(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing text")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		srv := NewServer(nil, nil)
		result, err := srv.handleSummarizeNotes(ctx, callReq(map[string]any{"text": "anything"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when no summarizer is configured")
		}
	})
}

func TestHandleGenerateQuiz(t *testing.T) {
	ctx := context.Background()
	srv := NewServer(nil, nil)
	srv.rng = rand.New(rand.NewSource(7))

	t.Run("normal", func(t *testing.T) {
		result, err := srv.handleGenerateQuiz(ctx, callReq(map[string]any{"text": quizNotes}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := textContent(t, result); !strings.Contains(got, "What is the meaning of") {
			t.Errorf("quiz text missing question template: %q", got)
		}
	})

	t.Run("multiple choice", func(t *testing.T) {
		result, err := srv.handleGenerateQuiz(ctx, callReq(map[string]any{
			"text": quizNotes,
			"type": "multiple_choice",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := textContent(t, result); !strings.Contains(got, "correct_label") {
			t.Errorf("quiz JSON missing correct_label: %q", got)
		}
	})

	t.Run("too few sentences for multiple choice", func(t *testing.T) {
		result, err := srv.handleGenerateQuiz(ctx, callReq(map[string]any{
			"text": "Only one sentence qualifies for a question here.",
			"type": "multiple_choice",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when distractors cannot be built")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		result, err := srv.handleGenerateQuiz(ctx, callReq(map[string]any{
			"text": quizNotes,
			"type": "essay",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown quiz type")
		}
	})
}

func TestHandleGenerateFlashcards(t *testing.T) {
	ctx := context.Background()
	srv := NewServer(nil, nil)

	t.Run("cards extracted", func(t *testing.T) {
		result, err := srv.handleGenerateFlashcards(ctx, callReq(map[string]any{
			"text": "Osmosis: passive movement of water\nEnzyme: protein catalyst",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		got := textContent(t, result)
		if !strings.Contains(got, "Osmosis") || !strings.Contains(got, "protein catalyst") {
			t.Errorf("cards JSON incomplete: %q", got)
		}
	})

	t.Run("no colon lines", func(t *testing.T) {
		result, err := srv.handleGenerateFlashcards(ctx, callReq(map[string]any{
			"text": "nothing to extract here",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := textContent(t, result); !strings.Contains(got, "No 'term: definition'") {
			t.Errorf("unexpected empty-input message: %q", got)
		}
	})
}

func TestHandleSearchNotes(t *testing.T) {
	ctx := context.Background()

	library, err := notes.NewLibrary(stubEmbedder{})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	err = library.Add(ctx, []notes.Note{
		{ID: "1", Title: "Biology", Content: "Mitochondria produce ATP.", ImportedAt: time.Now()},
		{ID: "2", Title: "Chemistry", Content: "Acids donate protons.", ImportedAt: time.Now()},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	srv := NewServer(nil, library)

	t.Run("basic search", func(t *testing.T) {
		result, err := srv.handleSearchNotes(ctx, callReq(map[string]any{"query": "Mitochondria produce ATP."}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := textContent(t, result); !strings.Contains(got, "result(s)") {
			t.Errorf("search output missing header: %q", got)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		result, err := srv.handleSearchNotes(ctx, callReq(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})

	t.Run("no library", func(t *testing.T) {
		bare := NewServer(nil, nil)
		result, err := bare.handleSearchNotes(ctx, callReq(map[string]any{"query": "anything"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when no library is configured")
		}
	})
}
