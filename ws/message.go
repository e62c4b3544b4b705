package ws

import (
	"encoding/json"

	"set-game-server/game"
)

// InboundEnvelope is the generic envelope for all client-to-server
// messages. The Type field is used for routing; Raw holds the full JSON
// payload.
type InboundEnvelope struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON implements custom unmarshaling to capture the raw payload.
func (e *InboundEnvelope) UnmarshalJSON(data []byte) error {
	type typeOnly struct {
		Type string `json:"type"`
	}
	var t typeOnly
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	e.Type = t.Type
	e.Raw = json.RawMessage(data)
	return nil
}

// --- Client-to-Server message payloads ---

// CreateRoomMsg asks the server to open a new room with the sender as its
// first player. The room code comes back in room_joined.
type CreateRoomMsg struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
}

// JoinRoomMsg joins an existing room by code.
type JoinRoomMsg struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// SubmitClaimMsg asserts that three cards on the board form a set.
// Cards are sent by value, never by board position.
type SubmitClaimMsg struct {
	Type       string          `json:"type"`
	RoomID     string          `json:"roomId"`
	PlayerName string          `json:"playerName"`
	Cards      []game.CardView `json:"cards"`
}

// RequestCardsMsg asks for 3 extra cards to be dealt onto the board.
type RequestCardsMsg struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

// LeaveRoomMsg leaves the current room.
type LeaveRoomMsg struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// --- Server-to-Client messages ---
// Game messages (board, scoreboard, claim results, roster notifications)
// are built and sent by the room itself; see the game package.

// ErrorMsg is sent when a client message is invalid or cannot be routed.
type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
