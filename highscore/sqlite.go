package highscore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/whack/constants"
)

// SQLiteStore keeps the score in a single-row key/value table of a SQLite file
type SQLiteStore struct {
	db        *sql.DB
	key       string
	closeOnce sync.Once
}

// OpenSQLite opens or creates the database at path and ensures the schema exists
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer is all the game ever needs
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		log.Printf("Warning: couldn't enable WAL mode: %v", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		log.Printf("Warning: couldn't set busy timeout: %v", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLiteStore{db: db, key: constants.HighScoreKey}, nil
}

// Load returns the stored score, 0 if the key is absent
func (s *SQLiteStore) Load(ctx context.Context) (int, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", s.key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return parseScore(raw)
}

// Save upserts the score
func (s *SQLiteStore) Save(ctx context.Context, score int) error {
	raw, err := formatScore(score)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.key, raw)
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Close releases the database handle, safe to call more than once
func (s *SQLiteStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.db.Close()
	})
	return err
}
