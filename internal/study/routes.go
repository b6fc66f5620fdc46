package study

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the deck, history, summary and quiz API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/decks", func(r chi.Router) {
		r.Get("/", handleListDecks(store))
		r.Post("/", handleCreateDeck(store))
		r.Get("/{id}", handleGetDeck(store))
		r.Delete("/{id}", handleDeleteDeck(store))
		r.Post("/{id}/cards", handleAddCards(store))
	})
	r.Get("/api/history", handleListHistory(store))
	r.Get("/api/summaries", handleListSummaries(store))
	r.Get("/api/quizzes", handleListQuizzes(store))
	r.Get("/api/quizzes/{id}", handleGetQuiz(store))
}

func handleListDecks(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decks, err := store.ListDecks(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if decks == nil {
			decks = []Deck{}
		}
		writeJSON(w, http.StatusOK, decks)
	}
}

func handleCreateDeck(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		deck, err := store.CreateDeck(r.Context(), req.Name, req.Description)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, deck)
	}
}

func handleGetDeck(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck, err := store.GetDeck(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if deck == nil {
			writeError(w, http.StatusNotFound, "deck not found")
			return
		}
		writeJSON(w, http.StatusOK, deck)
	}
}

func handleDeleteDeck(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteDeck(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAddCards(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID := chi.URLParam(r, "id")

		deck, err := store.GetDeck(r.Context(), deckID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if deck == nil {
			writeError(w, http.StatusNotFound, "deck not found")
			return
		}

		var req struct {
			Cards []Card `json:"cards"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Cards) == 0 {
			writeError(w, http.StatusBadRequest, "cards are required")
			return
		}
		for _, c := range req.Cards {
			if c.Term == "" {
				writeError(w, http.StatusBadRequest, "every card needs a term")
				return
			}
		}

		inserted, err := store.AddCards(r.Context(), deckID, req.Cards)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, inserted)
	}
}

func handleListHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.ListHistory(r.Context(), limitParam(r, 50))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if entries == nil {
			entries = []HistoryEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func handleListSummaries(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := store.ListSummaries(r.Context(), limitParam(r, 50))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if summaries == nil {
			summaries = []SavedSummary{}
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func handleListQuizzes(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := store.ListQuizzes(r.Context(), limitParam(r, 50))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if quizzes == nil {
			quizzes = []SavedQuiz{}
		}
		writeJSON(w, http.StatusOK, quizzes)
	}
}

func handleGetQuiz(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quiz, err := store.GetQuiz(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if quiz == nil {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		writeJSON(w, http.StatusOK, quiz)
	}
}

func limitParam(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
