package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/dashboard"
	"github.com/ravikh-dev/studykit/internal/db"
	"github.com/ravikh-dev/studykit/internal/notes"
	"github.com/ravikh-dev/studykit/internal/server"
	"github.com/ravikh-dev/studykit/internal/study"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the studykit web dashboard",
	Long:  `Starts the studykit HTTP server with the study dashboard, the REST API, and the ask websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Credentials are checked before the port is bound so a
		// misconfigured deployment fails immediately.
		if err := cfg.CheckCredentials(); err != nil {
			return err
		}

		answerer, err := createAnswererFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating QA provider: %w", err)
		}
		summarizer, err := createSummarizerFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating summarization provider: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "studykit.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store := study.NewStore(database)

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		library, err := notes.NewLibrary(embedder)
		if err != nil {
			return fmt.Errorf("creating note library: %w", err)
		}
		if err := library.Load(cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load note library from %s: %v\n", cfg.DataDir, err)
		}

		port := servePort
		if port == 0 {
			port = cfg.Port
		}

		srv := server.New(server.Config{
			Port:     port,
			DataDir:  cfg.DataDir,
			AllowAll: cfg.AllowAllOrigins,
		})

		dash := dashboard.New(answerer, summarizer, store)
		dash.RegisterRoutes(srv.Router())
		study.RegisterRoutes(srv.Router(), store)
		notes.RegisterRoutes(srv.Router(), library, cfg.DataDir)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "studykit v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Notes indexed: %d\n", library.Count())

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
