package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeFile string

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Condense study notes using hosted summarization",
	Long: `Sends the notes (from --file or stdin) to the configured summarization
model and prints the condensed text. Falls back across the configured
models when the primary is unavailable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := readInput(summarizeFile)
		if err != nil {
			return err
		}

		summarizer, err := createSummarizerFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating summarization provider: %w", err)
		}

		summary, err := summarizer.Summarize(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("summarizing: %w", err)
		}

		fmt.Println(summary.Text)
		if verbose {
			fmt.Printf("(model %s)\n", summary.Model)
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeFile, "file", "f", "", "read notes from this file instead of stdin")
	rootCmd.AddCommand(summarizeCmd)
}
