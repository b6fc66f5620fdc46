package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ravikh-dev/studykit/internal/mcp"
	"github.com/ravikh-dev/studykit/internal/notes"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing summarization, quiz, flashcard, and note-search tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Tools degrade individually: an agent without the
		// summarization credential can still generate quizzes.
		summarizer, err := createSummarizerFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summarize_notes unavailable: %v\n", err)
			summarizer = nil
		}

		var library *notes.Library
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: search_notes unavailable: %v\n", err)
		} else {
			library, err = notes.NewLibrary(embedder)
			if err != nil {
				return fmt.Errorf("creating note library: %w", err)
			}
			if err := library.Load(cfg.DataDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not load note library: %v\n", err)
				fmt.Fprintf(os.Stderr, "Search results will be empty. Run `studykit import` first.\n")
			}
		}

		mcpserver.Version = Version

		count := 0
		if library != nil {
			count = library.Count()
		}
		fmt.Fprintf(os.Stderr, "studykit MCP server started on stdio (notes=%d)\n", count)

		srv := mcpserver.NewServer(summarizer, library)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
