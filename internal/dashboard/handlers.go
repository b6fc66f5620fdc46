package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ravikh-dev/studykit/internal/generator"
	"github.com/ravikh-dev/studykit/internal/study"
)

type askRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type askResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score,omitempty"`
	Model  string  `json:"model,omitempty"`
}

func (d *Dashboard) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" || req.Context == "" {
		writeError(w, http.StatusBadRequest, "please provide both context and question")
		return
	}
	if d.answerer == nil {
		writeError(w, http.StatusServiceUnavailable, "answering provider not configured")
		return
	}

	answer, err := d.answerer.Answer(r.Context(), req.Question, req.Context)
	if err != nil {
		writeError(w, http.StatusBadGateway, "answering failed: "+err.Error())
		return
	}

	if d.store != nil {
		_, err := d.store.RecordAnswer(r.Context(), study.HistoryEntry{
			Question: req.Question,
			Material: req.Context,
			Answer:   answer.Text,
			Score:    answer.Score,
			Model:    answer.Model,
		})
		if err != nil {
			log.Printf("dashboard: recording answer: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: answer.Text, Score: answer.Score, Model: answer.Model})
}

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model,omitempty"`
}

func (d *Dashboard) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "please paste some text")
		return
	}
	if d.summarizer == nil {
		writeError(w, http.StatusServiceUnavailable, "summarization provider not configured")
		return
	}

	summary, err := d.summarizer.Summarize(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to summarize text: "+err.Error())
		return
	}

	if d.store != nil {
		if _, err := d.store.SaveSummary(r.Context(), req.Text, summary.Text, summary.Model); err != nil {
			log.Printf("dashboard: saving summary: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, summarizeResponse{Summary: summary.Text, Model: summary.Model})
}

type quizRequest struct {
	Text string `json:"text"`
	Type string `json:"type"` // "normal" or "multiple_choice"
}

type quizResponse struct {
	ID        string          `json:"id,omitempty"`
	Kind      string          `json:"kind"`
	Questions []string        `json:"questions,omitempty"`
	MCQs      []generator.MCQ `json:"mcqs,omitempty"`
}

func (d *Dashboard) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "please provide input text")
		return
	}

	resp := quizResponse{Kind: req.Type}
	var payload any

	switch req.Type {
	case "", "normal":
		resp.Kind = string(study.QuizNormal)
		resp.Questions = generator.Questions(req.Text)
		payload = resp.Questions

	case "multiple_choice":
		mcqs, err := generator.MultipleChoice(req.Text, d.rng)
		if err != nil {
			if errors.Is(err, generator.ErrInsufficientDistractors) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.MCQs = mcqs
		payload = mcqs

	default:
		writeError(w, http.StatusBadRequest, "unknown quiz type: "+req.Type)
		return
	}

	if d.store != nil {
		if saved, err := d.store.SaveQuiz(r.Context(), study.QuizKind(resp.Kind), req.Text, payload); err == nil {
			resp.ID = saved.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type flashcardsRequest struct {
	Text     string `json:"text"`
	DeckName string `json:"deck_name"` // optional: persist the cards into a new deck
}

type flashcardsResponse struct {
	Cards []generator.Flashcard `json:"cards"`
	Deck  *study.Deck           `json:"deck,omitempty"`
}

func (d *Dashboard) handleFlashcards(w http.ResponseWriter, r *http.Request) {
	var req flashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "please enter some notes or topic content")
		return
	}

	cards := generator.Flashcards(req.Text)
	resp := flashcardsResponse{Cards: cards}
	if cards == nil {
		resp.Cards = []generator.Flashcard{}
	}

	if req.DeckName != "" && len(cards) > 0 && d.store != nil {
		deck, err := d.store.CreateDeck(r.Context(), req.DeckName, "")
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		toInsert := make([]study.Card, len(cards))
		for i, c := range cards {
			toInsert[i] = study.Card{Term: c.Term, Definition: c.Definition}
		}
		if _, err := d.store.AddCards(r.Context(), deck.ID, toInsert); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		deck, err = d.store.GetDeck(r.Context(), deck.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Deck = deck
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
