package notes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the notes import and search API routes.
func RegisterRoutes(r chi.Router, lib *Library, dataDir string) {
	r.Route("/api/notes", func(r chi.Router) {
		r.Post("/import", handleImport(lib, dataDir))
		r.Get("/search", handleSearch(lib))
		r.Get("/stats", handleStats(lib))
	})
}

func handleImport(lib *Library, dataDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Dir     string   `json:"dir"`
			Include []string `json:"include"`
			Exclude []string `json:"exclude"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Dir == "" {
			writeError(w, http.StatusBadRequest, "dir is required")
			return
		}

		stats, err := Import(r.Context(), lib, ImportConfig{
			RootDir: req.Dir,
			Include: req.Include,
			Exclude: req.Exclude,
		}, nil)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Persist after each import so a restart keeps the library.
		if dataDir != "" {
			if err := lib.Persist(dataDir); err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func handleSearch(lib *Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}

		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		results, err := lib.Search(r.Context(), query, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if results == nil {
			results = []SearchResult{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func handleStats(lib *Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"count": lib.Count()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
