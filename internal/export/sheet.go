// Package export renders decks and quizzes into standalone HTML study
// sheets suitable for printing or sharing.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ravikh-dev/studykit/internal/generator"
	"github.com/ravikh-dev/studykit/internal/study"
)

// DeckMarkdown builds a markdown study sheet for a deck.
func DeckMarkdown(deck *study.Deck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", deck.Name)
	if deck.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", deck.Description)
	}
	for _, card := range deck.Cards {
		fmt.Fprintf(&b, "- **%s**: %s\n", card.Term, card.Definition)
	}
	return b.String()
}

// QuizMarkdown builds a markdown study sheet for a saved quiz. Answers for
// multiple-choice questions go into a separate section at the end.
func QuizMarkdown(quiz *study.SavedQuiz) (string, error) {
	var b strings.Builder
	b.WriteString("# Quiz\n\n")

	switch quiz.Kind {
	case study.QuizNormal:
		var questions []string
		if err := json.Unmarshal(quiz.Payload, &questions); err != nil {
			return "", fmt.Errorf("decoding quiz payload: %w", err)
		}
		for i, q := range questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}

	case study.QuizMultipleChoice:
		var mcqs []generator.MCQ
		if err := json.Unmarshal(quiz.Payload, &mcqs); err != nil {
			return "", fmt.Errorf("decoding quiz payload: %w", err)
		}
		for i, mcq := range mcqs {
			fmt.Fprintf(&b, "**Q%d.** %s\n\n", i+1, strings.ReplaceAll(mcq.Prompt, "\n", " "))
			for _, opt := range mcq.Options {
				fmt.Fprintf(&b, "- %s. %s\n", opt.Label, opt.Text)
			}
			b.WriteString("\n")
		}
		b.WriteString("## Answers\n\n")
		for i, mcq := range mcqs {
			fmt.Fprintf(&b, "%d. %s\n", i+1, mcq.CorrectLabel)
		}

	default:
		return "", fmt.Errorf("unknown quiz kind: %s", quiz.Kind)
	}

	return b.String(), nil
}

// pageTemplate wraps rendered markdown in a minimal printable page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; line-height: 1.5; padding: 0 1rem; }
  h1 { border-bottom: 2px solid #333; padding-bottom: .3rem; }
  li { margin: .3rem 0; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// RenderHTML converts a markdown study sheet to a complete HTML page.
func RenderHTML(title, markdown string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	tmpl, err := template.New("sheet").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	var out bytes.Buffer
	err = tmpl.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return out.Bytes(), nil
}

// WriteDeckSheet renders a deck to an HTML file at path.
func WriteDeckSheet(deck *study.Deck, path string) error {
	page, err := RenderHTML(deck.Name, DeckMarkdown(deck))
	if err != nil {
		return err
	}
	return os.WriteFile(path, page, 0644)
}

// WriteQuizSheet renders a saved quiz to an HTML file at path.
func WriteQuizSheet(quiz *study.SavedQuiz, path string) error {
	markdown, err := QuizMarkdown(quiz)
	if err != nil {
		return err
	}
	page, err := RenderHTML("Quiz", markdown)
	if err != nil {
		return err
	}
	return os.WriteFile(path, page, 0644)
}
