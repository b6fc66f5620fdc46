// Package generator produces quiz questions and flashcards from raw study
// notes using plain text manipulation. No model calls happen here.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// minSentenceTokens is the word-count threshold below which a sentence
// fragment is considered too short to build a question from.
const minSentenceTokens = 5

// sentenceDelimiter separates sentences in free-form notes. Splitting is
// done on the literal delimiter, so abbreviations and trailing periods are
// not treated specially.
const sentenceDelimiter = ". "

// ErrInsufficientDistractors is returned by MultipleChoice when the input
// does not contain enough distinct sentences to pick three distractors for
// some question.
var ErrInsufficientDistractors = errors.New("generator: not enough sentences to pick distractors")

// splitSentences breaks text into raw sentence fragments.
func splitSentences(text string) []string {
	return strings.Split(text, sentenceDelimiter)
}

// qualifies reports whether a sentence fragment is long enough to be used
// as question material.
func qualifies(sentence string) bool {
	return len(strings.Fields(sentence)) > minSentenceTokens
}

// Questions generates one open-ended question per qualifying sentence of
// the input. Output order follows input order; fragments are not
// deduplicated.
func Questions(text string) []string {
	var questions []string
	for _, sentence := range splitSentences(text) {
		if !qualifies(sentence) {
			continue
		}
		questions = append(questions, fmt.Sprintf("What is the meaning of '%s?'", strings.TrimSpace(sentence)))
	}
	return questions
}

// Option is a single labeled choice in a multiple-choice question.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// MCQ is a multiple-choice question with four labeled options, exactly one
// of which is correct.
type MCQ struct {
	Prompt       string   `json:"prompt"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correct_label"`
	Answer       string   `json:"answer"`
}

var optionLabels = []string{"A", "B", "C", "D"}

// MultipleChoice generates one multiple-choice question per qualifying
// sentence. The three distractors for each question are drawn uniformly at
// random, without replacement, from the other sentences of the input; the
// correct sentence never appears among them. rng may be nil, in which case
// the shared package-level source is used.
func MultipleChoice(text string, rng *rand.Rand) ([]MCQ, error) {
	sentences := splitSentences(text)

	intn := rand.Intn
	shuffle := rand.Shuffle
	if rng != nil {
		intn = rng.Intn
		shuffle = rng.Shuffle
	}

	var mcqs []MCQ
	for _, sentence := range sentences {
		if !qualifies(sentence) {
			continue
		}
		correct := strings.TrimSpace(sentence)

		// Candidate distractors: every sentence that is not this one.
		var pool []string
		for _, other := range sentences {
			if other != sentence {
				pool = append(pool, other)
			}
		}
		if len(pool) < 3 {
			return nil, fmt.Errorf("%w: need 3, have %d", ErrInsufficientDistractors, len(pool))
		}

		// Sample three without replacement.
		options := []string{correct}
		for i := 0; i < 3; i++ {
			j := intn(len(pool))
			options = append(options, pool[j])
			pool = append(pool[:j], pool[j+1:]...)
		}
		shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		mcq := MCQ{
			Prompt: fmt.Sprintf("What is described by the following statement?\n'%s'", correct),
			Answer: correct,
		}
		for i, opt := range options {
			mcq.Options = append(mcq.Options, Option{Label: optionLabels[i], Text: opt})
			if opt == correct {
				mcq.CorrectLabel = optionLabels[i]
			}
		}
		mcqs = append(mcqs, mcq)
	}
	return mcqs, nil
}

// Flashcard is a term/definition pair extracted from a colon-delimited
// line of notes.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Flashcards extracts one card per input line containing a colon. The
// first colon splits term from definition; both sides are trimmed of
// surrounding whitespace.
func Flashcards(text string) []Flashcard {
	var cards []Flashcard
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		term, definition, _ := strings.Cut(line, ":")
		cards = append(cards, Flashcard{
			Term:       strings.TrimSpace(term),
			Definition: strings.TrimSpace(definition),
		})
	}
	return cards
}
