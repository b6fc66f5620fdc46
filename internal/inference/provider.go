package inference

import "context"

// Answerer answers a question against a passage of study material using a
// hosted extractive QA model.
type Answerer interface {
	// Answer returns the model's best answer to question given material.
	Answer(ctx context.Context, question, material string) (*Answer, error)
	// Name returns the name of this provider.
	Name() string
}

// Summarizer condenses study notes using a hosted summarization model.
type Summarizer interface {
	// Summarize returns a condensed version of text.
	Summarize(ctx context.Context, text string) (*Summary, error)
	// Name returns the name of this provider.
	Name() string
}
