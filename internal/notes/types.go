package notes

import "time"

// Note is one imported piece of study material.
type Note struct {
	ID         string    `json:"id"`
	Path       string    `json:"path,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImportedAt time.Time `json:"imported_at"`
}

// SearchResult pairs a note with its similarity to the query.
type SearchResult struct {
	Note       Note    `json:"note"`
	Similarity float32 `json:"similarity"`
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Scanned  int `json:"scanned"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
