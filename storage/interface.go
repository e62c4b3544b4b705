package storage

import "context"

// ClaimStore abstracts persistence for accepted claims and the
// leaderboard. Implementations can be swapped for testing (mocks) or
// different backends.
type ClaimStore interface {
	RecordClaim(ctx context.Context, roomCode, playerName string) error
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Close()
}

// Ensure *Store implements ClaimStore at compile time.
var _ ClaimStore = (*Store)(nil)
