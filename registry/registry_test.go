package registry

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"set-game-server/config"
	"set-game-server/game"
	"set-game-server/gameerrors"
)

func testConfig() *config.Config {
	return &config.Config{
		InitialDeal:    12,
		RoomCodeLength: 6,
		MaxNameLength:  24,
	}
}

// waitFor reads one message from ch or fails the test.
func waitFor(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return nil
	}
}

func TestCreateRoomRegistersAndJoins(t *testing.T) {
	reg := New(testConfig())
	send := make(chan []byte, 32)

	room := reg.CreateRoom("Alice", send, rand.New(rand.NewSource(1)))

	if reg.Count() != 1 {
		t.Fatalf("expected 1 room, got %d", reg.Count())
	}
	if len(room.Code) != 6 {
		t.Errorf("room code %q, expected 6 characters", room.Code)
	}
	got, ok := reg.Get(room.Code)
	if !ok || got != room {
		t.Error("created room not retrievable by code")
	}

	// Creator's join is processed by the room loop
	var joined struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	if err := json.Unmarshal(waitFor(t, send), &joined); err != nil {
		t.Fatalf("decoding first message: %v", err)
	}
	if joined.Type != "room_joined" || joined.RoomID != room.Code {
		t.Errorf("first message = %+v, expected room_joined for %s", joined, room.Code)
	}
}

func TestJoinRoomUnknownCode(t *testing.T) {
	reg := New(testConfig())
	_, err := reg.JoinRoom("NOSUCH", "Alice", make(chan []byte, 1))
	if !errors.Is(err, gameerrors.ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestJoinRoomExistingCode(t *testing.T) {
	reg := New(testConfig())
	sendA := make(chan []byte, 32)
	room := reg.CreateRoom("Alice", sendA, rand.New(rand.NewSource(2)))

	sendB := make(chan []byte, 32)
	joinedRoom, err := reg.JoinRoom(room.Code, "Bob", sendB)
	if err != nil {
		t.Fatalf("joining existing room: %v", err)
	}
	if joinedRoom != room {
		t.Error("JoinRoom returned a different room instance")
	}
	// Bob receives the current state
	waitFor(t, sendB)
}

func TestEmptyRoomIsRemovedAndCodeNotReusable(t *testing.T) {
	reg := New(testConfig())
	counts := make(chan int, 8)
	reg.OnRoomsChanged = func(n int) { counts <- n }

	send := make(chan []byte, 32)
	room := reg.CreateRoom("Alice", send, rand.New(rand.NewSource(3)))
	if n := <-counts; n != 1 {
		t.Errorf("rooms after create = %d, expected 1", n)
	}

	if err := room.Submit(game.Action{Type: game.ActionLeave, PlayerName: "Alice"}); err != nil {
		t.Fatalf("submitting leave: %v", err)
	}
	select {
	case <-room.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("room did not terminate")
	}

	if reg.Count() != 0 {
		t.Errorf("expected 0 rooms after last leave, got %d", reg.Count())
	}
	if n := <-counts; n != 0 {
		t.Errorf("rooms after remove = %d, expected 0", n)
	}

	// The old code is gone; a join to it is RoomNotFound, and a new room
	// is a brand-new game, not a resumed one.
	if _, err := reg.JoinRoom(room.Code, "Bob", make(chan []byte, 1)); !errors.Is(err, gameerrors.ErrRoomNotFound) {
		t.Errorf("join to removed room: expected ErrRoomNotFound, got %v", err)
	}
	fresh := reg.CreateRoom("Bob", make(chan []byte, 32), rand.New(rand.NewSource(4)))
	if fresh == room {
		t.Error("new room reused the terminated instance")
	}
}

func TestSnapshot(t *testing.T) {
	reg := New(testConfig())
	sendA := make(chan []byte, 32)
	room := reg.CreateRoom("Alice", sendA, rand.New(rand.NewSource(5)))
	waitFor(t, sendA) // join processed

	infos := reg.Snapshot()
	if len(infos) != 1 {
		t.Fatalf("expected 1 room in snapshot, got %d", len(infos))
	}
	if infos[0].Code != room.Code {
		t.Errorf("snapshot code %q, expected %q", infos[0].Code, room.Code)
	}
	if infos[0].Players != 1 {
		t.Errorf("snapshot players = %d, expected 1", infos[0].Players)
	}
}
