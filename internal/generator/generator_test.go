package generator

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

const sampleNotes = "The mitochondria is the powerhouse of the cell. " +
	"Photosynthesis converts light energy into chemical energy in plants. " +
	"Osmosis is the movement of water across a semipermeable membrane. " +
	"DNA replication occurs during the S phase of the cell cycle. " +
	"Short one. " +
	"Enzymes lower the activation energy required for biochemical reactions"

func TestQuestionsFilterAndTemplate(t *testing.T) {
	questions := Questions(sampleNotes)

	// Five sentences clear the >5 token threshold; "Short one" does not.
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d: %v", len(questions), questions)
	}

	want := "What is the meaning of 'The mitochondria is the powerhouse of the cell?'"
	if questions[0] != want {
		t.Errorf("expected %q, got %q", want, questions[0])
	}

	// Order-preserving single pass.
	if !strings.Contains(questions[4], "Enzymes lower the activation energy") {
		t.Errorf("expected last question to come from last sentence, got %q", questions[4])
	}
}

func TestQuestionsEmptyAndShortInput(t *testing.T) {
	if got := Questions(""); got != nil {
		t.Errorf("expected no questions for empty input, got %v", got)
	}
	if got := Questions("Too short. Also tiny."); got != nil {
		t.Errorf("expected no questions for short sentences, got %v", got)
	}
}

func TestQuestionsNoDeduplication(t *testing.T) {
	text := "The quick brown fox jumps over the dog. The quick brown fox jumps over the dog"
	questions := Questions(text)
	if len(questions) != 2 {
		t.Fatalf("expected duplicate sentences to produce duplicate questions, got %d", len(questions))
	}
	if questions[0] != questions[1] {
		t.Errorf("expected identical questions, got %q and %q", questions[0], questions[1])
	}
}

func TestMultipleChoiceStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mcqs, err := MultipleChoice(sampleNotes, rng)
	if err != nil {
		t.Fatalf("MultipleChoice: %v", err)
	}
	if len(mcqs) != 5 {
		t.Fatalf("expected 5 MCQs, got %d", len(mcqs))
	}

	for _, mcq := range mcqs {
		if len(mcq.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(mcq.Options))
		}
		labels := map[string]bool{}
		correctSeen := 0
		for i, opt := range mcq.Options {
			wantLabel := []string{"A", "B", "C", "D"}[i]
			if opt.Label != wantLabel {
				t.Errorf("expected label %s at position %d, got %s", wantLabel, i, opt.Label)
			}
			labels[opt.Label] = true
			if opt.Label == mcq.CorrectLabel {
				correctSeen++
				if opt.Text != mcq.Answer {
					t.Errorf("correct option text %q does not match answer %q", opt.Text, mcq.Answer)
				}
			}
		}
		if len(labels) != 4 {
			t.Errorf("expected 4 distinct labels, got %v", labels)
		}
		if correctSeen != 1 {
			t.Errorf("expected exactly one correct option, got %d", correctSeen)
		}
	}
}

func TestMultipleChoiceDistractorExclusivity(t *testing.T) {
	// Run with several seeds; the correct sentence must never appear twice
	// among the options.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		mcqs, err := MultipleChoice(sampleNotes, rng)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, mcq := range mcqs {
			seen := map[string]int{}
			for _, opt := range mcq.Options {
				seen[strings.TrimSpace(opt.Text)]++
			}
			if seen[mcq.Answer] != 1 {
				t.Errorf("seed %d: answer %q appears %d times in options", seed, mcq.Answer, seen[mcq.Answer])
			}
		}
	}
}

func TestMultipleChoiceInsufficientDistractors(t *testing.T) {
	// Two sentences total: only one candidate distractor per question.
	text := "The first sentence has more than five words in it. The second sentence also has more than five words"
	_, err := MultipleChoice(text, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInsufficientDistractors) {
		t.Fatalf("expected ErrInsufficientDistractors, got %v", err)
	}
}

func TestFlashcardsFirstColonOnly(t *testing.T) {
	text := "Mitosis: cell division producing two identical daughter cells\n" +
		"No colon on this line\n" +
		"  URL : scheme: host and path  \n" +
		"\n" +
		"Osmosis:diffusion of water"

	cards := Flashcards(text)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d: %v", len(cards), cards)
	}

	if cards[0].Term != "Mitosis" {
		t.Errorf("expected term Mitosis, got %q", cards[0].Term)
	}
	if cards[0].Definition != "cell division producing two identical daughter cells" {
		t.Errorf("unexpected definition: %q", cards[0].Definition)
	}

	// Only the first colon splits; the rest stays in the definition.
	if cards[1].Term != "URL" || cards[1].Definition != "scheme: host and path" {
		t.Errorf("first-colon split broken: %+v", cards[1])
	}

	// Trimming applies to both sides.
	if cards[2].Term != "Osmosis" || cards[2].Definition != "diffusion of water" {
		t.Errorf("unexpected card: %+v", cards[2])
	}
}

func TestFlashcardsEmptyInput(t *testing.T) {
	if got := Flashcards(""); got != nil {
		t.Errorf("expected no cards, got %v", got)
	}
}
