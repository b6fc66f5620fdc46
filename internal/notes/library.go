// Package notes maintains a searchable library of imported study material.
package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/ravikh-dev/studykit/internal/embeddings"
)

const collectionName = "notes"

// Library stores notes in an in-memory vector collection with optional
// persistence to disk.
type Library struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedFunc  chromem.EmbeddingFunc
}

// NewLibrary creates an empty notes library using the given embedder for
// both indexing and queries.
func NewLibrary(embedder embeddings.Embedder) (*Library, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)
	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &Library{db: db, collection: col, embedFunc: ef}, nil
}

// Add indexes notes into the library. Notes without an ID get one assigned.
func (l *Library) Add(ctx context.Context, items []Note) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(items))
	for i, n := range items {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.ImportedAt.IsZero() {
			n.ImportedAt = time.Now().UTC()
		}
		docs[i] = chromem.Document{
			ID:      n.ID,
			Content: n.Content,
			Metadata: map[string]string{
				"path":        n.Path,
				"title":       n.Title,
				"imported_at": n.ImportedAt.Format(time.RFC3339),
			},
		}
	}

	return l.collection.AddDocuments(ctx, docs, 1)
}

// Search returns up to limit notes ranked by similarity to query.
func (l *Library) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	// chromem-go requires nResults <= collection size.
	count := l.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := l.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("notes query: %w", err)
	}

	out := make([]SearchResult, len(results))
	for i, r := range results {
		imported, _ := time.Parse(time.RFC3339, r.Metadata["imported_at"])
		out[i] = SearchResult{
			Note: Note{
				ID:         r.ID,
				Path:       r.Metadata["path"],
				Title:      r.Metadata["title"],
				Content:    r.Content,
				ImportedAt: imported,
			},
			Similarity: r.Similarity,
		}
	}
	return out, nil
}

// Count returns the number of notes in the library.
func (l *Library) Count() int {
	return l.collection.Count()
}

// Persist saves the library to the given directory.
func (l *Library) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating notes dir: %w", err)
	}
	return l.db.ExportToFile(filepath.Join(dir, "notes.gob.gz"), true, "")
}

// Load restores the library from the given directory. Missing files are
// not an error; the library just starts empty.
func (l *Library) Load(dir string) error {
	path := filepath.Join(dir, "notes.gob.gz")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := l.db.ImportFromFile(path, ""); err != nil {
		return fmt.Errorf("loading notes library: %w", err)
	}
	// Re-acquire collection reference after import.
	col := l.db.GetCollection(collectionName, l.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	l.collection = col
	return nil
}
