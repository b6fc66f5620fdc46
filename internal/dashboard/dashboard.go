// Package dashboard serves the single-page study assistant UI and the
// JSON endpoints behind it.
package dashboard

import (
	"math/rand"

	"github.com/go-chi/chi/v5"

	"github.com/ravikh-dev/studykit/internal/inference"
	"github.com/ravikh-dev/studykit/internal/study"
)

// Dashboard wires the form UI to the inference providers and the local
// generators.
type Dashboard struct {
	answerer   inference.Answerer
	summarizer inference.Summarizer
	store      *study.Store
	rng        *rand.Rand
}

// New creates a new Dashboard. rng may be nil; it is only set by tests
// that need deterministic multiple-choice output.
func New(answerer inference.Answerer, summarizer inference.Summarizer, store *study.Store) *Dashboard {
	return &Dashboard{
		answerer:   answerer,
		summarizer: summarizer,
		store:      store,
	}
}

// RegisterRoutes mounts the UI and its API routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Post("/api/ask", d.handleAsk)
	r.Post("/api/summarize", d.handleSummarize)
	r.Post("/api/quiz", d.handleQuiz)
	r.Post("/api/flashcards", d.handleFlashcards)
	r.Get("/ws/ask", d.handleAskSocket)
}
