package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ravikh-dev/studykit/internal/study"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// askSocketRequest is the incoming WebSocket message format.
type askSocketRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// askSocketResponse is the outgoing WebSocket message format.
type askSocketResponse struct {
	Type   string  `json:"type"` // "answer" or "error"
	Answer string  `json:"answer,omitempty"`
	Score  float64 `json:"score,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// handleAskSocket answers a stream of questions over one connection, so
// the UI can keep a conversation going against the same study material.
func (d *Dashboard) handleAskSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}

		var req askSocketRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.sendSocketError(conn, "invalid message format")
			continue
		}
		if req.Question == "" || req.Context == "" {
			d.sendSocketError(conn, "please provide both context and question")
			continue
		}
		if d.answerer == nil {
			d.sendSocketError(conn, "answering provider not configured")
			continue
		}

		answer, err := d.answerer.Answer(r.Context(), req.Question, req.Context)
		if err != nil {
			d.sendSocketError(conn, "answering failed: "+err.Error())
			continue
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

		resp := askSocketResponse{Type: "answer", Answer: answer.Text, Score: answer.Score}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("dashboard: websocket write: %v", err)
			return
		}
	}
}

func (d *Dashboard) sendSocketError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(askSocketResponse{Type: "error", Error: message}); err != nil {
		log.Printf("dashboard: websocket write error: %v", err)
	}
}
