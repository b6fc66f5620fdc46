package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askFile string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question against your notes using hosted extractive QA",
	Long: `Sends the question plus the study material (from --file or stdin) to the
configured QA model and prints the extracted answer with its confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		material, err := readInput(askFile)
		if err != nil {
			return err
		}

		answerer, err := createAnswererFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating QA provider: %w", err)
		}

		answer, err := answerer.Answer(cmd.Context(), args[0], material)
		if err != nil {
			return fmt.Errorf("answering: %w", err)
		}

		fmt.Println(answer.Text)
		if verbose {
			fmt.Printf("(score %.3f, model %s)\n", answer.Score, answer.Model)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "read study material from this file instead of stdin")
	rootCmd.AddCommand(askCmd)
}
