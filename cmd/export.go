package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/db"
	"github.com/ravikh-dev/studykit/internal/export"
	"github.com/ravikh-dev/studykit/internal/study"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved decks and quizzes as printable HTML study sheets",
}

var exportDeckCmd = &cobra.Command{
	Use:   "deck <id>",
	Short: "Export a flashcard deck as an HTML study sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		deck, err := store.GetDeck(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading deck: %w", err)
		}
		if deck == nil {
			return fmt.Errorf("no deck with id %q", args[0])
		}

		out := exportOut
		if out == "" {
			out = deck.ID + ".html"
		}
		if err := export.WriteDeckSheet(deck, out); err != nil {
			return fmt.Errorf("writing study sheet: %w", err)
		}

		fmt.Printf("Wrote %s (%d card(s))\n", out, len(deck.Cards))
		return nil
	},
}

var exportQuizCmd = &cobra.Command{
	Use:   "quiz <id>",
	Short: "Export a saved quiz as an HTML study sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		quiz, err := store.GetQuiz(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("loading quiz: %w", err)
		}
		if quiz == nil {
			return fmt.Errorf("no quiz with id %q", args[0])
		}

		out := exportOut
		if out == "" {
			out = quiz.ID + ".html"
		}
		if err := export.WriteQuizSheet(quiz, out); err != nil {
			return fmt.Errorf("writing study sheet: %w", err)
		}

		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

// openStore opens the studykit database from the configured data dir.
func openStore() (*study.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.Open(filepath.Join(cfg.DataDir, "studykit.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return study.NewStore(database), func() { database.Close() }, nil
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output file (default <id>.html)")
	exportCmd.AddCommand(exportDeckCmd)
	exportCmd.AddCommand(exportQuizCmd)
	rootCmd.AddCommand(exportCmd)
}
