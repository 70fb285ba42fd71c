// Command master is the leaderboard server the game submits scores to.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	port   int
	dbPath string
	limit  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "master",
		Short:        "Downhill leaderboard server",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	rootCmd.Flags().StringVar(&dbPath, "db", "data/leaderboard.db", "SQLite database path")
	rootCmd.Flags().IntVar(&limit, "limit", 50, "entries returned per request")

	return rootCmd
}

func run(_ *cobra.Command, _ []string) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	store, err := OpenStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Printf("[master] close error: %v", cerr)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewMux(store, limit),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("[master] starting on %s (db=%s, limit=%d)", srv.Addr, dbPath, limit)
	return srv.ListenAndServe()
}
