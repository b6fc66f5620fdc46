package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "studykit",
	Short: "Turn raw study notes into answers, summaries, quizzes, and flashcards",
	Long: `Studykit is a study aid that answers questions against your notes using
hosted extractive QA models, condenses long passages with hosted
summarization, and generates quizzes and flashcards locally. It ships a
web dashboard, a semantic note library, and an MCP server for AI agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".studykit.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// cobra prints usage on every error by default, which buries the
	// actual failure for runtime errors like a missing credential.
	rootCmd.SilenceUsage = true
}
