package game

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"set-game-server/config"
	"set-game-server/gameerrors"
	"set-game-server/wsutil"
)

// ActionType enumerates the kinds of actions a room can process.
type ActionType int

const (
	ActionJoin ActionType = iota
	ActionSubmitClaim
	ActionRequestCards
	ActionLeave
)

// Action represents a player action sent into the room's action channel.
type Action struct {
	Type       ActionType
	PlayerName string
	Send       chan []byte // for Join: the joining connection's send channel
	Cards      [3]CardView // for SubmitClaim
}

// StatsSink records claim outcomes. Optional; may be nil.
type StatsSink interface {
	ClaimObserved(accepted bool, elapsed time.Duration)
}

// Room owns one game: deck, board, roster and scores. It is an actor —
// every mutation happens on the goroutine running Run, which consumes
// Actions one at a time. That single consumer is what makes concurrent
// claims on the same card resolve to exactly one winner.
type Room struct {
	Code string

	deck    Deck
	board   *Board
	players []*Player // roster order, preserved for the scoreboard
	byName  map[string]*Player
	cfg     *config.Config

	playerCount atomic.Int32

	Actions chan Action
	Done    chan struct{}

	// OnEmpty is called (from the room goroutine) when the last player
	// leaves, just before Run returns. The registry uses it for GC.
	OnEmpty func(code string)

	// OnClaimAccepted is called after a successful claim has been applied
	// and broadcast. Optional; used for persistence.
	OnClaimAccepted func(code, playerName string)

	// Stats records claim outcomes. Optional.
	Stats StatsSink
}

// NewRoom creates a room with a fresh shuffled deck and a dealt board.
// Pass a seeded rng for deterministic games in tests; nil uses the global
// source.
func NewRoom(code string, cfg *config.Config, rng *rand.Rand) *Room {
	deck := NewDeck(rng)
	board := NewBoard(&deck, cfg.InitialDeal)
	return &Room{
		Code:    code,
		deck:    deck,
		board:   board,
		players: nil,
		byName:  make(map[string]*Player),
		cfg:     cfg,
		Actions: make(chan Action, 32),
		Done:    make(chan struct{}),
	}
}

// Submit queues an action for the room. Returns ErrRoomClosed if the room
// has already terminated.
func (r *Room) Submit(a Action) error {
	select {
	case <-r.Done:
		return gameerrors.ErrRoomClosed
	case r.Actions <- a:
		return nil
	}
}

// PlayerCount reports the current roster size. Safe to call from any
// goroutine; used by the registry and metrics.
func (r *Room) PlayerCount() int {
	return int(r.playerCount.Load())
}

// Run is the room's main loop. It processes actions sequentially and
// returns when the roster empties. Run as a goroutine.
func (r *Room) Run() {
	defer close(r.Done)

	for a := range r.Actions {
		switch a.Type {
		case ActionJoin:
			r.handleJoin(a.PlayerName, a.Send)
		case ActionSubmitClaim:
			r.handleClaim(a.PlayerName, a.Cards)
		case ActionRequestCards:
			r.handleRequestCards()
		case ActionLeave:
			if r.handleLeave(a.PlayerName) {
				return
			}
		}
	}
}

func (r *Room) sendTo(p *Player, v any) {
	if p == nil || p.Send == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshaling room message", "tag", "room", "room", r.Code, "err", err)
		return
	}
	wsutil.SafeSend(p.Send, data)
}

func (r *Room) broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshaling room message", "tag", "room", "room", r.Code, "err", err)
		return
	}
	for _, p := range r.players {
		if p.Send != nil {
			wsutil.SafeSend(p.Send, data)
		}
	}
}
