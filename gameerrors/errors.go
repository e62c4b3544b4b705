package gameerrors

import "errors"

// Game/room sentinel errors. Used by the game, registry and ws packages
// to avoid circular imports.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomClosed     = errors.New("room closed")
	ErrCardNotOnBoard = errors.New("card not on board")
	ErrInvalidClaim   = errors.New("cards do not form a set")
	// ErrNameTaken is reserved for a strict join policy. The current policy
	// treats a duplicate name as a reconnection, so nothing returns it yet.
	ErrNameTaken = errors.New("player name already taken")
)
