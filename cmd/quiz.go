package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/generator"
)

var (
	quizFile string
	quizType string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate quiz questions from study notes",
	Long: `Builds quiz questions from the notes on --file or stdin. The normal type
prints one open question per sentence; multiple_choice adds three
distractors drawn from the other sentences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(quizFile)
		if err != nil {
			return err
		}

		switch quizType {
		case "normal":
			questions := generator.Questions(text)
			if len(questions) == 0 {
				return fmt.Errorf("no sentences long enough to build questions from")
			}
			for i, q := range questions {
				fmt.Printf("%d. %s\n", i+1, q)
			}
		case "multiple_choice":
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			quiz, err := generator.MultipleChoice(text, rng)
			if err != nil {
				if errors.Is(err, generator.ErrInsufficientDistractors) {
					return fmt.Errorf("not enough distinct sentences to build multiple-choice options")
				}
				return err
			}
			for i, q := range quiz {
				fmt.Printf("%d. %s\n", i+1, q.Prompt)
				for _, opt := range q.Options {
					fmt.Printf("   %s) %s\n", opt.Label, opt.Text)
				}
				fmt.Printf("   Answer: %s\n", q.CorrectLabel)
			}
		default:
			return fmt.Errorf("unknown quiz type %q (want normal or multiple_choice)", quizType)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().StringVarP(&quizFile, "file", "f", "", "read notes from this file instead of stdin")
	quizCmd.Flags().StringVarP(&quizType, "type", "t", "normal", "quiz type: normal or multiple_choice")
	rootCmd.AddCommand(quizCmd)
}
