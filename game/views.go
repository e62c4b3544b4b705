package game

import "fmt"

// CardView is the wire representation of a card. Cards travel by value,
// never by board index, so a racing claim can be checked against the
// board's current contents.
type CardView struct {
	Number  int    `json:"number"`
	Color   string `json:"color"`
	Shape   string `json:"shape"`
	Shading string `json:"shading"`
}

// ViewOf converts a card to its wire form.
func ViewOf(c Card) CardView {
	return CardView{
		Number:  int(c.Number),
		Color:   c.Color.String(),
		Shape:   c.Shape.String(),
		Shading: c.Shading.String(),
	}
}

// Card parses a wire descriptor back into a card value. Attribute values
// outside the closed enumerations are rejected.
func (v CardView) Card() (Card, error) {
	var c Card
	switch v.Number {
	case 1, 2, 3:
		c.Number = Number(v.Number)
	default:
		return Card{}, fmt.Errorf("invalid number %d", v.Number)
	}
	switch v.Color {
	case "red":
		c.Color = Red
	case "green":
		c.Color = Green
	case "purple":
		c.Color = Purple
	default:
		return Card{}, fmt.Errorf("invalid color %q", v.Color)
	}
	switch v.Shape {
	case "diamond":
		c.Shape = Diamond
	case "oval":
		c.Shape = Oval
	case "squiggle":
		c.Shape = Squiggle
	default:
		return Card{}, fmt.Errorf("invalid shape %q", v.Shape)
	}
	switch v.Shading {
	case "solid":
		c.Shading = Solid
	case "striped":
		c.Shading = Striped
	case "open":
		c.Shading = Open
	default:
		return Card{}, fmt.Errorf("invalid shading %q", v.Shading)
	}
	return c, nil
}

// BuildCardViews constructs the client-facing board list in board order.
func BuildCardViews(b *Board) []CardView {
	views := make([]CardView, len(b.Cards))
	for i, c := range b.Cards {
		views[i] = ViewOf(c)
	}
	return views
}

// ScoreEntry is one row of the scoreboard.
type ScoreEntry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

// --- Server-to-client messages emitted by the room ---

// RoomJoinedMsg confirms a player has entered a room (sent point-to-point).
type RoomJoinedMsg struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// BoardMsg is a full board replace.
type BoardMsg struct {
	Type          string     `json:"type"`
	RoomID        string     `json:"roomId"`
	Cards         []CardView `json:"cards"`
	DeckRemaining int        `json:"deckRemaining"`
	MatchCount    int        `json:"matchCount"`
}

// ScoreboardMsg is a full scoreboard replace, in roster order.
type ScoreboardMsg struct {
	Type   string       `json:"type"`
	RoomID string       `json:"roomId"`
	Scores []ScoreEntry `json:"scores"`
}

// ClaimAcceptedMsg announces a successful claim to the whole room.
type ClaimAcceptedMsg struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// ClaimRejectedMsg is sent to the claimant only.
// Reason is "invalid_claim" or "card_not_on_board".
type ClaimRejectedMsg struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	Reason     string `json:"reason"`
}

// PlayerJoinedMsg is a room-wide roster notification.
type PlayerJoinedMsg struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
}

// PlayerLeftMsg is a room-wide roster notification.
type PlayerLeftMsg struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
}

// Rejection reasons used in ClaimRejectedMsg.
const (
	ReasonInvalidClaim   = "invalid_claim"
	ReasonCardNotOnBoard = "card_not_on_board"
)

// BuildBoardMsg assembles the board snapshot for a room.
func (r *Room) BuildBoardMsg() BoardMsg {
	return BoardMsg{
		Type:          "board",
		RoomID:        r.Code,
		Cards:         BuildCardViews(r.board),
		DeckRemaining: r.deck.Len(),
		MatchCount:    r.board.MatchCount(),
	}
}

// BuildScoreboardMsg assembles the scoreboard snapshot in roster order.
func (r *Room) BuildScoreboardMsg() ScoreboardMsg {
	scores := make([]ScoreEntry, len(r.players))
	for i, p := range r.players {
		scores[i] = ScoreEntry{PlayerName: p.Name, Score: p.Score}
	}
	return ScoreboardMsg{Type: "scoreboard", RoomID: r.Code, Scores: scores}
}
