package study

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ravikh-dev/studykit/internal/db"
)

// Store manages persistence of decks, cards, history, summaries and quizzes.
type Store struct {
	db *db.DB
}

// NewStore creates a new study store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateDeck adds a new empty deck.
func (s *Store) CreateDeck(ctx context.Context, name, description string) (*Deck, error) {
	now := time.Now().UTC()
	deck := Deck{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO decks (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		deck.ID, deck.Name, deck.Description, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting deck: %w", err)
	}
	return &deck, nil
}

// GetDeck retrieves a deck with its cards in position order. Returns nil
// when the deck does not exist.
func (s *Store) GetDeck(ctx context.Context, id string) (*Deck, error) {
	var deck Deck
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM decks WHERE id = ?`, id,
	).Scan(&deck.ID, &deck.Name, &deck.Description, &deck.CreatedAt, &deck.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying deck: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, deck_id, term, definition, position, created_at FROM cards WHERE deck_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Term, &c.Definition, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		deck.Cards = append(deck.Cards, c)
	}
	return &deck, rows.Err()
}

// ListDecks returns all decks (without cards), most recent first.
func (s *Store) ListDecks(ctx context.Context) ([]Deck, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM decks ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying decks: %w", err)
	}
	defer rows.Close()

	var decks []Deck
	for rows.Next() {
		var d Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// DeleteDeck removes a deck and, via cascade, its cards.
func (s *Store) DeleteDeck(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting deck: %w", err)
	}
	return nil
}

// AddCards appends cards to a deck, continuing from the current highest
// position.
func (s *Store) AddCards(ctx context.Context, deckID string, cards []Card) ([]Card, error) {
	if len(cards) == 0 {
		return nil, nil
	}

	var next int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM cards WHERE deck_id = ?`, deckID,
	).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("querying card positions: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	inserted := make([]Card, 0, len(cards))
	for i, c := range cards {
		c.ID = uuid.New().String()
		c.DeckID = deckID
		c.Position = next + i
		c.CreatedAt = now

		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, deck_id, term, definition, position, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.DeckID, c.Term, c.Definition, c.Position, c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting card: %w", err)
		}
		inserted = append(inserted, c)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE decks SET updated_at = ? WHERE id = ?`, now, deckID); err != nil {
		return nil, fmt.Errorf("touching deck: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing cards: %w", err)
	}
	return inserted, nil
}

// RecordAnswer stores one answered question in the history.
func (s *Store) RecordAnswer(ctx context.Context, entry HistoryEntry) (*HistoryEntry, error) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO qa_history (id, question, material, answer, score, model, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Question, entry.Material, entry.Answer, entry.Score, entry.Model, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting history entry: %w", err)
	}
	return &entry, nil
}

// ListHistory returns the most recent answered questions, newest first.
// limit <= 0 means no limit.
func (s *Store) ListHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `SELECT id, question, material, answer, score, model, created_at FROM qa_history ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Material, &e.Answer, &e.Score, &e.Model, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveSummary stores one summarization result.
func (s *Store) SaveSummary(ctx context.Context, sourceText, summary, model string) (*SavedSummary, error) {
	saved := SavedSummary{
		ID:         uuid.New().String(),
		SourceText: sourceText,
		Summary:    summary,
		Model:      model,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (id, source_text, summary, model, created_at) VALUES (?, ?, ?, ?, ?)`,
		saved.ID, saved.SourceText, saved.Summary, saved.Model, saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting summary: %w", err)
	}
	return &saved, nil
}

// ListSummaries returns saved summaries, newest first. limit <= 0 means no
// limit.
func (s *Store) ListSummaries(ctx context.Context, limit int) ([]SavedSummary, error) {
	query := `SELECT id, source_text, summary, model, created_at FROM summaries ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying summaries: %w", err)
	}
	defer rows.Close()

	var summaries []SavedSummary
	for rows.Next() {
		var sm SavedSummary
		if err := rows.Scan(&sm.ID, &sm.SourceText, &sm.Summary, &sm.Model, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

// SaveQuiz stores a generated quiz. payload must be JSON-serializable.
func (s *Store) SaveQuiz(ctx context.Context, kind QuizKind, sourceText string, payload any) (*SavedQuiz, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshalling quiz payload: %w", err)
	}

	quiz := SavedQuiz{
		ID:         uuid.New().String(),
		Kind:       kind,
		SourceText: sourceText,
		Payload:    raw,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, kind, source_text, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		quiz.ID, quiz.Kind, quiz.SourceText, string(quiz.Payload), quiz.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting quiz: %w", err)
	}
	return &quiz, nil
}

// GetQuiz retrieves a saved quiz by ID. Returns nil when not found.
func (s *Store) GetQuiz(ctx context.Context, id string) (*SavedQuiz, error) {
	var quiz SavedQuiz
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, source_text, payload, created_at FROM quizzes WHERE id = ?`, id,
	).Scan(&quiz.ID, &quiz.Kind, &quiz.SourceText, &payload, &quiz.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying quiz: %w", err)
	}
	quiz.Payload = json.RawMessage(payload)
	return &quiz, nil
}

// ListQuizzes returns saved quizzes, newest first. limit <= 0 means no
// limit.
func (s *Store) ListQuizzes(ctx context.Context, limit int) ([]SavedQuiz, error) {
	query := `SELECT id, kind, source_text, payload, created_at FROM quizzes ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []SavedQuiz
	for rows.Next() {
		var q SavedQuiz
		var payload string
		if err := rows.Scan(&q.ID, &q.Kind, &q.SourceText, &payload, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning quiz: %w", err)
		}
		q.Payload = json.RawMessage(payload)
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}
