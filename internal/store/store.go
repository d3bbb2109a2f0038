package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/cadence/ent"
	"github.com/abhisek/cadence/internal/adapt"
	"github.com/abhisek/cadence/internal/burnout"
	"github.com/abhisek/cadence/internal/pattern"
	"github.com/abhisek/cadence/internal/recommend"
	"github.com/abhisek/cadence/internal/telemetry"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// TelemetryRepo returns the telemetry read source backed by this store.
func (s *Store) TelemetryRepo() telemetry.Repository {
	return &telemetryRepo{client: s.client}
}

// PatternRepo returns the behavioral pattern repository.
func (s *Store) PatternRepo() pattern.Repo {
	return &patternRepo{client: s.client}
}

// InsightRepo returns the behavioral insight repository.
func (s *Store) InsightRepo() pattern.InsightRepo {
	return &insightRepo{client: s.client}
}

// ProfileRepo returns the learning profile repository.
func (s *Store) ProfileRepo() pattern.ProfileRepo {
	return &profileRepo{client: s.client}
}

// BurnoutRepo returns the burnout assessment repository.
func (s *Store) BurnoutRepo() burnout.Repo {
	return &burnoutRepo{client: s.client}
}

// RecommendationRepo returns the recommendation repository.
func (s *Store) RecommendationRepo() recommend.Repo {
	return &recommendationRepo{client: s.client}
}

// AppliedRepo returns the applied-recommendation repository.
func (s *Store) AppliedRepo() recommend.AppliedRepo {
	return &appliedRepo{client: s.client}
}

// AdaptationLog returns the difficulty adjustment log.
func (s *Store) AdaptationLog() adapt.AdaptationLog {
	return &adaptationLog{client: s.client}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CADENCE_DB environment variable
// 2. $XDG_DATA_HOME/cadence/cadence.db
// 3. ~/.local/share/cadence/cadence.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CADENCE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "cadence", "cadence.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
