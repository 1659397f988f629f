// Package storage provides persistence for finished round times.
// The SQLite store uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies; a plain-text log keeps one MM:SS.mmm line per round.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultRetain is the number of records kept per game when no cap is set.
const DefaultRetain = 500

// ScoreLog is the score persistence contract used by the game platform.
// ReadLastN returns durations in insertion order, newest last.
type ScoreLog interface {
	AppendScore(durationMs int64) error
	ReadLastN(n int) ([]int64, error)
}

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db     *sql.DB
	retain int
}

// Record is one finished round.
type Record struct {
	ID         int64
	GameID     string
	DurationMs int64
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, retain: DefaultRetain}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id, id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(game_id, duration_ms ASC);
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

// SetRetain caps the number of rows kept per game. Values <= 0 disable the cap.
func (s *Store) SetRetain(n int) {
	s.retain = n
}

// SaveRun records a finished round and prunes the oldest rows beyond the
// retention cap. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, durationMs int64) (int64, error) {
	if durationMs < 0 {
		return 0, fmt.Errorf("storage: negative duration %d: %w", durationMs, ErrInvalidRecord)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, duration_ms) VALUES (?, ?)",
		gameID, durationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := s.prune(gameID); err != nil {
		return id, err
	}
	return id, nil
}

// prune deletes the oldest rows of a game beyond the retention cap.
func (s *Store) prune(gameID string) error {
	if s.retain <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM runs
		 WHERE game_id = ? AND id NOT IN (
			SELECT id FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT ?
		 )`,
		gameID, gameID, s.retain,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prune runs: %w", err)
	}
	return nil
}

// RecentRuns retrieves the last N rounds for the given game, oldest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	records, err := s.queryRuns(
		`SELECT id, game_id, duration_ms, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, err
	}

	// Newest last
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// BestRuns retrieves the fastest N rounds for the given game.
func (s *Store) BestRuns(gameID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, game_id, duration_ms, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestTime returns the fastest round for the given game.
// Returns 0 if no rounds exist.
func (s *Store) BestTime(gameID string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return best.Int64, nil
}

// ClearRuns deletes all rounds for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Runs       int
	BestMs     int64
	AvgMs      float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestMs, &stats.AvgMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(duration_ms), AVG(duration_ms), MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Runs, &gs.BestMs, &gs.AvgMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ForGame returns a ScoreLog view of the store bound to one game.
func (s *Store) ForGame(gameID string) ScoreLog {
	return &gameLog{store: s, gameID: gameID}
}

type gameLog struct {
	store  *Store
	gameID string
}

func (l *gameLog) AppendScore(durationMs int64) error {
	_, err := l.store.SaveRun(l.gameID, durationMs)
	return err
}

func (l *gameLog) ReadLastN(n int) ([]int64, error) {
	records, err := l.store.RecentRuns(l.gameID, n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.DurationMs
	}
	return out, nil
}
