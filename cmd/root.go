package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karvel/folio/internal/config"
	"github.com/karvel/folio/internal/derive"
	"github.com/karvel/folio/internal/logger"
	"github.com/karvel/folio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio – a personal portfolio and journal keeper",
	Long: `folio is a single-binary, file-based portfolio and journal keeper.
Diary entries, semesters, projects and interview stories are stored as
human-readable JSON files (or a single SQLite database) under ~/.folio/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(diaryCmd)
	rootCmd.AddCommand(semesterCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(purgeCmd)
}

// openStore builds the persisted collection store from configuration. When
// the configured backend cannot be opened the session falls back to an
// in-memory store, so commands keep working and only persistence is lost.
func openStore() (*store.Store, config.Config, func()) {
	log := logger.New("store")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cleanup := func() {}
	var backend store.Backend
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := openSQLiteBackend(cfg.DataDir)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite unavailable, changes will not be persisted")
			backend = store.NewMemory()
		} else {
			backend = db
			cleanup = func() { _ = db.Close() }
		}
	default:
		fb, err := store.NewFile(cfg.DataDir)
		if err != nil {
			log.Warn().Err(err).Msg("data directory unavailable, changes will not be persisted")
			backend = store.NewMemory()
		} else {
			backend = fb
		}
	}

	return store.New(backend, log), cfg, cleanup
}

func openSQLiteBackend(dataDir string) (*store.SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return store.OpenSQLite(filepath.Join(dataDir, "folio.db"))
}

// parseTags splits a comma-separated flag value into trimmed, non-empty tags.
func parseTags(s string) []string {
	tags := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// dateOrToday validates a --date flag value, defaulting an empty value to
// today's date.
func dateOrToday(s string) (string, error) {
	if s == "" {
		return time.Now().Format(derive.DateLayout), nil
	}
	if _, ok := derive.ParseDate(s); !ok {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return s, nil
}
