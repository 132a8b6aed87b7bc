// Package storage provides SQLite-based persistence for level progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// ClearEntry records one solved level.
type ClearEntry struct {
	ID        int64
	LevelID   string
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_level_id ON clears(level_id);
		CREATE INDEX IF NOT EXISTS idx_clears_best ON clears(level_id, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveClear records a solved level with the number of moves it took.
// Returns the ID of the inserted record.
func (s *Store) SaveClear(levelID string, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO clears (level_id, moves) VALUES (?, ?)",
		levelID, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestMoves returns the lowest move count recorded for the level.
// Returns 0 and false when the level has never been cleared.
func (s *Store) BestMoves(levelID string) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM clears WHERE level_id = ?",
		levelID,
	).Scan(&moves)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !moves.Valid {
		return 0, false, nil
	}
	return int(moves.Int64), true, nil
}

// ClearCount returns how many times the level has been cleared.
func (s *Store) ClearCount(levelID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM clears WHERE level_id = ?",
		levelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count clears: %w", err)
	}
	return count, nil
}

// ClearedLevels returns the distinct IDs of all cleared levels, sorted.
func (s *Store) ClearedLevels() ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT level_id FROM clears ORDER BY level_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list cleared levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecentClears returns the most recent clears for a level, newest first.
func (s *Store) RecentClears(levelID string, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, created_at
		 FROM clears
		 WHERE level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Moves, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan clear: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
