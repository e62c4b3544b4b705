package game

import "log/slog"

// handleJoin registers a player, or — when the name is already on the
// roster — treats the join as a reconnection: the stale send channel is
// replaced and the score preserved. Either way the joiner gets the current
// board and the room gets an updated scoreboard.
func (r *Room) handleJoin(name string, send chan []byte) {
	if existing, ok := r.byName[name]; ok {
		existing.Send = send
		slog.Info("player reconnected", "tag", "room", "room", r.Code, "player", name)
		r.sendTo(existing, RoomJoinedMsg{Type: "room_joined", RoomID: r.Code, PlayerName: name})
		r.sendTo(existing, r.BuildBoardMsg())
		r.sendTo(existing, r.BuildScoreboardMsg())
		return
	}

	p := NewPlayer(name, send)
	r.players = append(r.players, p)
	r.byName[name] = p
	r.playerCount.Store(int32(len(r.players)))
	slog.Info("player joined", "tag", "room", "room", r.Code, "player", name, "players", len(r.players))

	r.sendTo(p, RoomJoinedMsg{Type: "room_joined", RoomID: r.Code, PlayerName: name})
	r.sendTo(p, r.BuildBoardMsg())
	r.broadcast(PlayerJoinedMsg{Type: "player_joined", PlayerName: name})
	r.broadcast(r.BuildScoreboardMsg())
}

// handleLeave drops a player from the roster and scores. Reports whether
// the room is now empty and should terminate.
func (r *Room) handleLeave(name string) bool {
	p, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	for i, q := range r.players {
		if q == p {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}
	r.playerCount.Store(int32(len(r.players)))
	slog.Info("player left", "tag", "room", "room", r.Code, "player", name, "players", len(r.players))

	r.broadcast(PlayerLeftMsg{Type: "player_left", PlayerName: name})
	r.broadcast(r.BuildScoreboardMsg())

	if len(r.players) == 0 {
		if r.OnEmpty != nil {
			r.OnEmpty(r.Code)
		}
		return true
	}
	return false
}

// handleRequestCards deals 3 extra cards when the deck allows. An
// exhausted deck makes this a silent no-op, not an error.
func (r *Room) handleRequestCards() {
	if !r.board.DealThree(&r.deck) {
		return
	}
	r.broadcast(r.BuildBoardMsg())
}
