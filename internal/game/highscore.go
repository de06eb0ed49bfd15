package game

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// HighScoreStore persists the per-mode best score. The simulation only
// reports results; comparison against the stored best and durability
// are the store's concern, and its failures never reach the core.
type HighScoreStore interface {
	// Load returns the best score for every mode, zero when a mode has
	// never been played.
	Load() (map[string]int, error)
	// Report records a finished round and returns the best score for
	// the mode after the update.
	Report(modeKey string, score int) (int, error)
}

const scoresTable = "high_scores"

// SQLiteScoreStore keeps one row per mode in a local sqlite database.
type SQLiteScoreStore struct {
	db *sql.DB
}

func OpenScoreStore(path string) (*SQLiteScoreStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score database: %w", err)
	}

	store := &SQLiteScoreStore{db: db}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (store *SQLiteScoreStore) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + scoresTable + ` (
		mode TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := store.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

func (store *SQLiteScoreStore) Load() (map[string]int, error) {
	scores := map[string]int{
		ModeClassic.Key():  0,
		ModeAIBattle.Key(): 0,
		ModeObstacle.Key(): 0,
	}

	rows, err := store.db.Query(`SELECT mode, score FROM ` + scoresTable + `;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var score int
		if err := rows.Scan(&mode, &score); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scores[mode] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return scores, nil
}

func (store *SQLiteScoreStore) Report(modeKey string, score int) (int, error) {
	const upsertSQL = `
	INSERT INTO ` + scoresTable + ` (mode, score) VALUES (?, ?)
	ON CONFLICT(mode) DO UPDATE
		SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		WHERE excluded.score > ` + scoresTable + `.score;`

	if _, err := store.db.Exec(upsertSQL, modeKey, score); err != nil {
		return 0, fmt.Errorf("failed to record score for %s: %w", modeKey, err)
	}

	var best int
	err := store.db.QueryRow(`SELECT score FROM `+scoresTable+` WHERE mode = ?;`, modeKey).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("failed to read best score for %s: %w", modeKey, err)
	}
	return best, nil
}

func (store *SQLiteScoreStore) Close() error {
	return store.db.Close()
}
