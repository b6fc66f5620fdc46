package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/notes"
	"github.com/ravikh-dev/studykit/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import notes into the semantic library",
	Long: `Walks the given directory (default .), embeds every file matching the
configured include patterns, and persists the library under the data
directory so later searches and serves pick it up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		library, err := notes.NewLibrary(embedder)
		if err != nil {
			return fmt.Errorf("creating note library: %w", err)
		}
		if err := library.Load(cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load existing library: %v\n", err)
		}

		stats, err := notes.Import(cmd.Context(), library, notes.ImportConfig{
			RootDir: root,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		}, progress.NewReporter())
		if err != nil {
			return fmt.Errorf("importing notes: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		if err := library.Persist(cfg.DataDir); err != nil {
			return fmt.Errorf("persisting library: %w", err)
		}

		fmt.Printf("Scanned %d file(s): %d imported, %d skipped. Library now holds %d note(s).\n",
			stats.Scanned, stats.Imported, stats.Skipped, library.Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
