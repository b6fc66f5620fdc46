package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/db"
	"github.com/ravikh-dev/studykit/internal/generator"
	"github.com/ravikh-dev/studykit/internal/study"
)

var (
	cardsFile string
	cardsDeck string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Extract flashcards from study notes",
	Long: `Extracts one term/definition card per 'term: definition' line of the
notes on --file or stdin. With --deck the cards are also saved to a new
deck in the studykit database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cardsFile)
		if err != nil {
			return err
		}

		cards := generator.Flashcards(text)
		if len(cards) == 0 {
			fmt.Println("No 'term: definition' lines found.")
			return nil
		}

		for _, c := range cards {
			fmt.Printf("%s — %s\n", c.Term, c.Definition)
		}

		if cardsDeck == "" {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "studykit.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := study.NewStore(database)
		deck, err := store.CreateDeck(cmd.Context(), cardsDeck, "")
		if err != nil {
			return fmt.Errorf("creating deck: %w", err)
		}

		deckCards := make([]study.Card, len(cards))
		for i, c := range cards {
			deckCards[i] = study.Card{Term: c.Term, Definition: c.Definition}
		}
		if _, err := store.AddCards(cmd.Context(), deck.ID, deckCards); err != nil {
			return fmt.Errorf("saving cards: %w", err)
		}

		fmt.Printf("Saved %d card(s) to deck %q (%s)\n", len(cards), deck.Name, deck.ID)
		return nil
	},
}

func init() {
	cardsCmd.Flags().StringVarP(&cardsFile, "file", "f", "", "read notes from this file instead of stdin")
	cardsCmd.Flags().StringVarP(&cardsDeck, "deck", "d", "", "save the cards to a new deck with this name")
	rootCmd.AddCommand(cardsCmd)
}
