package game

import (
	"log/slog"
	"time"
)

// handleClaim validates a submitted triple against the current board and,
// if it forms a set, applies the claim: score, removal, refill, top-up.
// A failed claim changes nothing and is reported to the claimant only.
func (r *Room) handleClaim(name string, views [3]CardView) {
	start := time.Now()
	p, ok := r.byName[name]
	if !ok {
		slog.Warn("claim from unknown player", "tag", "room", "room", r.Code, "player", name)
		return
	}

	var claimed [3]Card
	for i, v := range views {
		c, err := v.Card()
		if err != nil {
			// A descriptor outside the card universe cannot be on the board.
			r.rejectClaim(p, ReasonCardNotOnBoard, start)
			return
		}
		claimed[i] = c
	}

	// Resolve by value under the room's serialization: a card already
	// removed by a racing claim is simply no longer on the board.
	if err := r.board.Resolve(claimed); err != nil {
		r.rejectClaim(p, ReasonCardNotOnBoard, start)
		return
	}

	if !IsMatch(claimed[0], claimed[1], claimed[2]) {
		r.rejectClaim(p, ReasonInvalidClaim, start)
		return
	}

	if err := r.board.Remove(claimed); err != nil {
		// Resolve above guarantees presence; this cannot happen.
		slog.Error("removing resolved claim", "tag", "room", "room", r.Code, "err", err)
		return
	}
	p.Score++
	r.board.DealThree(&r.deck)
	r.board.TopUp(&r.deck)

	slog.Info("claim accepted", "tag", "room", "room", r.Code, "player", name,
		"score", p.Score, "deck", r.deck.Len(), "board", len(r.board.Cards))

	r.broadcast(ClaimAcceptedMsg{Type: "claim_accepted", RoomID: r.Code, PlayerName: name})
	r.broadcast(r.BuildBoardMsg())
	r.broadcast(r.BuildScoreboardMsg())

	if r.OnClaimAccepted != nil {
		r.OnClaimAccepted(r.Code, name)
	}
	if r.Stats != nil {
		r.Stats.ClaimObserved(true, time.Since(start))
	}
}

func (r *Room) rejectClaim(p *Player, reason string, start time.Time) {
	r.sendTo(p, ClaimRejectedMsg{Type: "claim_rejected", PlayerName: p.Name, Reason: reason})
	if r.Stats != nil {
		r.Stats.ClaimObserved(false, time.Since(start))
	}
}
