package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ravikh-dev/studykit/internal/generator"
	"github.com/ravikh-dev/studykit/internal/notes"
)

// handleSummarizeNotes condenses the given text via the hosted summarizer.
func (s *Server) handleSummarizeNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}
	if s.summarizer == nil {
		return mcp.NewToolResultError("no summarization provider configured"), nil
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summarization failed: %v", err)), nil
	}

	return mcp.NewToolResultText(summary.Text), nil
}

// handleGenerateQuiz builds quiz questions locally from the given text.
func (s *Server) handleGenerateQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	switch kind := request.GetString("type", "normal"); kind {
	case "normal":
		questions := generator.Questions(text)
		if len(questions) == 0 {
			return mcp.NewToolResultText("No sentences long enough to build questions from."), nil
		}
		return toolResultJSON(questions)
	case "multiple_choice":
		quiz, err := generator.MultipleChoice(text, s.rng)
		if err != nil {
			if errors.Is(err, generator.ErrInsufficientDistractors) {
				return mcp.NewToolResultError("not enough distinct sentences to build multiple-choice options"), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("quiz generation failed: %v", err)), nil
		}
		return toolResultJSON(quiz)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown quiz type %q", kind)), nil
	}
}

// handleGenerateFlashcards extracts term/definition cards from the given text.
func (s *Server) handleGenerateFlashcards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	cards := generator.Flashcards(text)
	if len(cards) == 0 {
		return mcp.NewToolResultText("No 'term: definition' lines found."), nil
	}
	return toolResultJSON(cards)
}

// handleSearchNotes performs semantic search over the imported note library.
func (s *Server) handleSearchNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if s.library == nil {
		return mcp.NewToolResultError("no note library configured"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	results, err := s.library.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No results found. Import notes with `studykit import` first."), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// formatSearchResults converts search results into a readable text block for
// the calling agent.
func formatSearchResults(results []notes.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Title: %s\n", r.Note.Title))
		if r.Note.Path != "" {
			sb.WriteString(fmt.Sprintf("Path: %s\n", r.Note.Path))
		}
		sb.WriteString(fmt.Sprintf("Similarity: %.2f\n", r.Similarity))
		sb.WriteString(r.Note.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

// toolResultJSON marshals v and wraps it as a text tool result.
func toolResultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
