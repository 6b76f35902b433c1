// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed level.
type Solve struct {
	ID        int64
	LevelID   string
	Player    string
	Moves     int // Commits made before the win
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	Solves      int
	Players     int
	BestTime    time.Duration
	AvgTime     time.Duration
	FewestMoves int
	LastSolved  time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level_id ON solves(level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level_id, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_solves_player ON solves(player);
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

// SaveSolve records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.LevelID == "" {
		return 0, errors.New("storage: solve has no level id")
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (level_id, player, moves, duration_ms) VALUES (?, ?, ?, ?)",
		solve.LevelID, solve.Player, solve.Moves, solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the fastest N solves of a level.
// Ties on time go to fewer moves, then to the earlier record.
func (s *Store) BestSolves(levelID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, moves, duration_ms, created_at
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY duration_ms ASC, moves ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []Solve
	for rows.Next() {
		var e Solve
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Player, &e.Moves, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTime returns the fastest solve time for a level.
// The second result is false if the level has never been solved.
func (s *Store) BestTime(levelID string) (time.Duration, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM solves WHERE level_id = ?",
		levelID,
	).Scan(&best)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}

	return time.Duration(best.Int64) * time.Millisecond, true, nil
}

// SolvedLevels returns the IDs of levels a player has solved, sorted.
// An empty player matches every record.
func (s *Store) SolvedLevels(player string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT level_id FROM solves
		 WHERE ? = '' OR player = ?
		 ORDER BY level_id`,
		player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// LevelStats retrieves aggregated statistics for a specific level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var best, fewest sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), MIN(duration_ms), AVG(duration_ms), MIN(moves)
		 FROM solves WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Solves, &stats.Players, &best, &avg, &fewest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	if best.Valid {
		stats.BestTime = time.Duration(best.Int64) * time.Millisecond
	}
	if avg.Valid {
		stats.AvgTime = time.Duration(avg.Float64) * time.Millisecond
	}
	if fewest.Valid {
		stats.FewestMoves = int(fewest.Int64)
	}

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE level_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		levelID,
	).Scan(&lastSolved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(lastSolved)
	}

	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been solved.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COUNT(DISTINCT player), MIN(duration_ms), AVG(duration_ms), MIN(moves), MAX(created_at)
		 FROM solves
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var best int64
		var avg float64
		var lastSolved any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.Players, &best, &avg, &st.FewestMoves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(best) * time.Millisecond
		st.AvgTime = time.Duration(avg) * time.Millisecond
		st.LastSolved = parseTime(lastSolved)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or text.
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
