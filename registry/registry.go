package registry

import (
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"set-game-server/config"
	"set-game-server/game"
	"set-game-server/gameerrors"
)

// RoomInfo is a registry snapshot row, used by the REST room list.
type RoomInfo struct {
	Code    string `json:"roomId"`
	Players int    `json:"players"`
}

// Registry owns the mapping from room code to running room. Rooms are
// created on demand, looked up for routing, and removed the moment their
// roster empties. Access to the map is the only cross-room
// synchronization; each room serializes its own transitions.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*game.Room
	cfg   *config.Config

	// Stats is handed to every room it creates. Optional.
	Stats game.StatsSink

	// OnClaimAccepted is handed to every room it creates. Optional;
	// used for persistence.
	OnClaimAccepted func(code, playerName string)

	// OnRoomsChanged is called with the room count after create/remove.
	// Optional; used for metrics.
	OnRoomsChanged func(count int)
}

// New creates an empty registry.
func New(cfg *config.Config) *Registry {
	return &Registry{
		rooms: make(map[string]*game.Room),
		cfg:   cfg,
	}
}

// CreateRoom starts a fresh room (new deck, dealt board), registers it
// under a generated code and queues the creator's join. Pass a seeded rng
// for deterministic games in tests; nil uses the global source.
func (reg *Registry) CreateRoom(playerName string, send chan []byte, rng *rand.Rand) *game.Room {
	reg.mu.Lock()
	code := reg.newCode()
	room := game.NewRoom(code, reg.cfg, rng)
	room.OnEmpty = reg.remove
	room.OnClaimAccepted = reg.OnClaimAccepted
	room.Stats = reg.Stats
	reg.rooms[code] = room
	count := len(reg.rooms)
	reg.mu.Unlock()

	// The join is queued before the loop starts, so the room can never
	// observe an empty roster before its first player.
	room.Actions <- game.Action{Type: game.ActionJoin, PlayerName: playerName, Send: send}
	go room.Run()

	slog.Info("room created", "tag", "registry", "room", code, "player", playerName, "rooms", count)
	if reg.OnRoomsChanged != nil {
		reg.OnRoomsChanged(count)
	}
	return room
}

// JoinRoom queues a join for an existing room. Returns ErrRoomNotFound
// when the code is unknown or the room terminated while joining.
func (reg *Registry) JoinRoom(code, playerName string, send chan []byte) (*game.Room, error) {
	room, ok := reg.Get(code)
	if !ok {
		return nil, gameerrors.ErrRoomNotFound
	}
	if err := room.Submit(game.Action{Type: game.ActionJoin, PlayerName: playerName, Send: send}); err != nil {
		return nil, gameerrors.ErrRoomNotFound
	}
	// The room may have emptied and been removed between Get and Submit;
	// a join queued on a dead loop is never processed, so surface it.
	if _, still := reg.Get(code); !still {
		return nil, gameerrors.ErrRoomNotFound
	}
	return room, nil
}

// Get looks up a room by code.
func (reg *Registry) Get(code string) (*game.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// Snapshot lists live rooms with their roster sizes.
func (reg *Registry) Snapshot() []RoomInfo {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	infos := make([]RoomInfo, 0, len(reg.rooms))
	for code, room := range reg.rooms {
		infos = append(infos, RoomInfo{Code: code, Players: room.PlayerCount()})
	}
	return infos
}

// remove is the rooms' OnEmpty hook; it runs on the emptying room's own
// goroutine.
func (reg *Registry) remove(code string) {
	reg.mu.Lock()
	delete(reg.rooms, code)
	count := len(reg.rooms)
	reg.mu.Unlock()

	slog.Info("room removed", "tag", "registry", "room", code, "rooms", count)
	if reg.OnRoomsChanged != nil {
		reg.OnRoomsChanged(count)
	}
}

// newCode derives a short display code from a UUID. Caller holds reg.mu.
func (reg *Registry) newCode() string {
	n := reg.cfg.RoomCodeLength
	if n <= 0 || n > 32 {
		n = 6
	}
	for {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		code := strings.ToUpper(raw[:n])
		if _, taken := reg.rooms[code]; !taken {
			return code
		}
	}
}
