package game

import "set-game-server/gameerrors"

// Board holds the face-up cards currently in play. The board and the deck
// are always disjoint. All mutation happens inside the owning room's
// action loop, so Board itself carries no locking.
type Board struct {
	Cards []Card
}

// NewBoard deals the initial board: initialDeal cards off the deck, then
// the top-up loop until a set exists or the deck cannot supply 3 more.
// A set-less board with an exhausted deck is a legal terminal state.
func NewBoard(deck *Deck, initialDeal int) *Board {
	b := &Board{Cards: deck.Deal(initialDeal)}
	b.TopUp(deck)
	return b
}

// TopUp deals 3 cards at a time while the board holds no set and the deck
// has at least 3 cards left.
func (b *Board) TopUp(deck *Deck) {
	for {
		if _, _, _, ok := FindMatch(b.Cards); ok {
			return
		}
		if deck.Len() < 3 {
			return
		}
		b.Cards = append(b.Cards, deck.Deal(3)...)
	}
}

// DealThree unconditionally deals 3 more cards onto the board if the deck
// can supply them. Reports whether anything was dealt.
func (b *Board) DealThree(deck *Deck) bool {
	if deck.Len() < 3 {
		return false
	}
	b.Cards = append(b.Cards, deck.Deal(3)...)
	return true
}

// indexOf returns the board position of c, or -1.
func (b *Board) indexOf(c Card) int {
	for i, card := range b.Cards {
		if card == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is currently on the board.
func (b *Board) Contains(c Card) bool {
	return b.indexOf(c) >= 0
}

// Resolve checks that the three claimed cards are present on the board and
// distinct. The board never holds duplicates, so three equal-valued
// descriptors can only resolve to fewer than three board cards.
func (b *Board) Resolve(claimed [3]Card) error {
	if claimed[0] == claimed[1] || claimed[0] == claimed[2] || claimed[1] == claimed[2] {
		return gameerrors.ErrCardNotOnBoard
	}
	for _, c := range claimed {
		if !b.Contains(c) {
			return gameerrors.ErrCardNotOnBoard
		}
	}
	return nil
}

// Remove takes exactly the three claimed cards off the board by value.
// Fails without mutating if any card is not present.
func (b *Board) Remove(claimed [3]Card) error {
	if err := b.Resolve(claimed); err != nil {
		return err
	}
	kept := make([]Card, 0, len(b.Cards)-3)
	for _, card := range b.Cards {
		if card == claimed[0] || card == claimed[1] || card == claimed[2] {
			continue
		}
		kept = append(kept, card)
	}
	b.Cards = kept
	return nil
}

// MatchCount returns the number of distinct sets currently on the board.
func (b *Board) MatchCount() int {
	return len(FindAllMatches(b.Cards))
}
