package study

import (
	"encoding/json"
	"time"
)

// QuizKind distinguishes the two locally generated quiz formats.
type QuizKind string

const (
	QuizNormal         QuizKind = "normal"
	QuizMultipleChoice QuizKind = "multiple_choice"
)

// Deck is a named collection of flashcards.
type Deck struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cards       []Card    `json:"cards,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Card is a single term/definition flashcard within a deck.
type Card struct {
	ID         string    `json:"id"`
	DeckID     string    `json:"deck_id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryEntry records one answered question.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Material  string    `json:"material"`
	Answer    string    `json:"answer"`
	Score     float64   `json:"score,omitempty"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedSummary records one summarization result.
type SavedSummary struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	Summary    string    `json:"summary"`
	Model      string    `json:"model,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SavedQuiz records one generated quiz. Payload holds the rendered
// questions in the shape produced by the generator package.
type SavedQuiz struct {
	ID         string          `json:"id"`
	Kind       QuizKind        `json:"kind"`
	SourceText string          `json:"source_text"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}
