package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"set-game-server/game"
	"set-game-server/gameerrors"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client is a middleman between the websocket connection and the game.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
	Name string
	Room *game.Room
}

// ReadPump pumps messages from the websocket connection into the game.
// It runs in its own goroutine per connection.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read", "tag", "ws", "err", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps messages from the send channel to the websocket
// connection. It runs in its own goroutine per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var envelope InboundEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.sendError("Invalid message format.")
		return
	}

	switch envelope.Type {
	case "create_room":
		c.handleCreateRoom(envelope.Raw)
	case "join_room":
		c.handleJoinRoom(envelope.Raw)
	case "submit_claim":
		c.handleSubmitClaim(envelope.Raw)
	case "request_cards":
		c.handleRequestCards(envelope.Raw)
	case "leave_room":
		c.handleLeaveRoom(envelope.Raw)
	default:
		c.sendError("Unknown message type: " + envelope.Type)
	}
}

// validName checks name length against config.
func (c *Client) validName(name string) bool {
	return len(name) >= 1 && len(name) <= c.Hub.Config.MaxNameLength
}

func (c *Client) handleCreateRoom(raw json.RawMessage) {
	var msg CreateRoomMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid create_room message.")
		return
	}
	if !c.validName(msg.PlayerName) {
		c.sendError(fmt.Sprintf("Name must be between 1 and %d characters.", c.Hub.Config.MaxNameLength))
		return
	}
	if c.Room != nil {
		c.sendError("Already in a room; leave it first.")
		return
	}

	c.Name = msg.PlayerName
	c.Room = c.Hub.Registry.CreateRoom(msg.PlayerName, c.Send, nil)
}

func (c *Client) handleJoinRoom(raw json.RawMessage) {
	var msg JoinRoomMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid join_room message.")
		return
	}
	if !c.validName(msg.PlayerName) {
		c.sendError(fmt.Sprintf("Name must be between 1 and %d characters.", c.Hub.Config.MaxNameLength))
		return
	}
	if c.Room != nil {
		c.sendError("Already in a room; leave it first.")
		return
	}

	room, err := c.Hub.Registry.JoinRoom(msg.RoomID, msg.PlayerName, c.Send)
	if err != nil {
		if errors.Is(err, gameerrors.ErrRoomNotFound) {
			c.sendError("Room " + msg.RoomID + " not found.")
		} else {
			c.sendError("Could not join room.")
		}
		return
	}
	c.Name = msg.PlayerName
	c.Room = room
}

func (c *Client) handleSubmitClaim(raw json.RawMessage) {
	if c.Room == nil {
		c.sendError("You are not in a room.")
		return
	}

	var msg SubmitClaimMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid submit_claim message.")
		return
	}
	// The match rule is defined on exactly three cards; guard arity here
	// rather than accept arbitrary-length input.
	if len(msg.Cards) != 3 {
		c.sendError("A claim must name exactly three cards.")
		return
	}

	err := c.Room.Submit(game.Action{
		Type:       game.ActionSubmitClaim,
		PlayerName: c.Name,
		Cards:      [3]game.CardView{msg.Cards[0], msg.Cards[1], msg.Cards[2]},
	})
	if err != nil {
		c.sendError("Room no longer exists.")
		c.Room = nil
	}
}

func (c *Client) handleRequestCards(raw json.RawMessage) {
	if c.Room == nil {
		c.sendError("You are not in a room.")
		return
	}

	var msg RequestCardsMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid request_cards message.")
		return
	}

	if err := c.Room.Submit(game.Action{Type: game.ActionRequestCards}); err != nil {
		c.sendError("Room no longer exists.")
		c.Room = nil
	}
}

func (c *Client) handleLeaveRoom(raw json.RawMessage) {
	if c.Room == nil {
		c.sendError("You are not in a room.")
		return
	}

	var msg LeaveRoomMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid leave_room message.")
		return
	}

	_ = c.Room.Submit(game.Action{Type: game.ActionLeave, PlayerName: c.Name})
	c.Room = nil
}

func (c *Client) sendError(message string) {
	msg := ErrorMsg{Type: "error", Message: message}
	data, _ := json.Marshal(msg)
	select {
	case c.Send <- data:
	default:
	}
}
