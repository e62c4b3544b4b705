package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultLeaderboardLimit = 20

const createTableSQL = `
CREATE TABLE IF NOT EXISTS claim_history (
	id UUID PRIMARY KEY,
	claimed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	room_code TEXT NOT NULL,
	player_name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_claim_history_player ON claim_history(player_name);
CREATE INDEX IF NOT EXISTS idx_claim_history_room ON claim_history(room_code);
`

// LeaderboardEntry is one leaderboard row: a player and how many sets they
// have claimed across all rooms. Rank uses competition ranking (ties share
// a rank).
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	PlayerName  string    `json:"playerName"`
	SetsFound   int       `json:"setsFound"`
	LastClaimAt time.Time `json:"lastClaimAt"`
}

// Store persists accepted claims.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and ensures the claim_history table
// exists. If databaseURL is empty, NewStore returns (nil, nil) and no
// persistence occurs.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, nil
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// RecordClaim inserts one accepted claim.
func (s *Store) RecordClaim(ctx context.Context, roomCode, playerName string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO claim_history (id, room_code, player_name) VALUES ($1, $2, $3)`,
		uuid.NewString(), roomCode, playerName)
	return err
}

// Leaderboard returns the top players by total accepted claims.
// limit <= 0 falls back to the default.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	rows, err := s.pool.Query(ctx,
		`SELECT player_name, COUNT(*) AS sets_found, MAX(claimed_at) AS last_claim_at
		 FROM claim_history
		 GROUP BY player_name
		 ORDER BY sets_found DESC, player_name ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerName, &e.SetsFound, &e.LastClaimAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	assignRanks(entries)
	return entries, nil
}

// assignRanks fills in competition ranks: entries are assumed sorted by
// SetsFound descending; equal counts share a rank and the next distinct
// count skips past them (1, 1, 3, ...).
func assignRanks(entries []LeaderboardEntry) {
	for i := range entries {
		if i > 0 && entries[i].SetsFound == entries[i-1].SetsFound {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
