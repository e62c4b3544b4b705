package game

// Player is one participant in a room. Send is the player's outbound
// channel; the room only ever writes to it fire-and-forget, so a dead
// connection never blocks the game.
type Player struct {
	Name  string
	Score int
	Send  chan []byte
}

// NewPlayer creates a Player with the given name and send channel.
func NewPlayer(name string, send chan []byte) *Player {
	return &Player{Name: name, Score: 0, Send: send}
}
