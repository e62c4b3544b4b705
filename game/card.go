package game

import (
	"fmt"
	"math/rand"
)

// Number is how many symbols appear on a card.
type Number int

const (
	One Number = iota + 1
	Two
	Three
)

// Color is the symbol color.
type Color int

const (
	Red Color = iota
	Green
	Purple
)

// String returns the protocol string for a Color.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Purple:
		return "purple"
	default:
		return "unknown"
	}
}

// Shape is the symbol shape.
type Shape int

const (
	Diamond Shape = iota
	Oval
	Squiggle
)

// String returns the protocol string for a Shape.
func (s Shape) String() string {
	switch s {
	case Diamond:
		return "diamond"
	case Oval:
		return "oval"
	case Squiggle:
		return "squiggle"
	default:
		return "unknown"
	}
}

// Shading is the symbol fill.
type Shading int

const (
	Solid Shading = iota
	Striped
	Open
)

// String returns the protocol string for a Shading.
func (s Shading) String() string {
	switch s {
	case Solid:
		return "solid"
	case Striped:
		return "striped"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Card is a single card: four attributes, three possible values each.
// Cards are compared by structural equality; the full universe has
// 3*3*3*3 = 81 distinct cards.
type Card struct {
	Number  Number
	Color   Color
	Shape   Shape
	Shading Shading
}

// String returns a compact human-readable form, e.g. "2 green oval striped".
func (c Card) String() string {
	return fmt.Sprintf("%d %s %s %s", c.Number, c.Color, c.Shape, c.Shading)
}

// Deck is the face-down remainder of the card universe. Cards are dealt
// from the tail and never return.
type Deck []Card

// Universe returns all 81 cards in attribute order, each exactly once.
func Universe() []Card {
	cards := make([]Card, 0, 81)
	for n := One; n <= Three; n++ {
		for col := Red; col <= Purple; col++ {
			for sh := Diamond; sh <= Squiggle; sh++ {
				for f := Solid; f <= Open; f++ {
					cards = append(cards, Card{Number: n, Color: col, Shape: sh, Shading: f})
				}
			}
		}
	}
	return cards
}

// NewDeck returns the full universe in uniformly random order.
// Pass a seeded rng for deterministic decks in tests; nil uses the
// global source.
func NewDeck(rng *rand.Rand) Deck {
	d := Deck(Universe())
	swap := func(i, j int) { d[i], d[j] = d[j], d[i] }
	if rng != nil {
		rng.Shuffle(len(d), swap)
	} else {
		rand.Shuffle(len(d), swap)
	}
	return d
}

// Deal removes up to n cards from the tail of the deck and returns them.
func (d *Deck) Deal(n int) []Card {
	if n > len(*d) {
		n = len(*d)
	}
	cut := len(*d) - n
	dealt := make([]Card, n)
	copy(dealt, (*d)[cut:])
	*d = (*d)[:cut]
	return dealt
}

// Len returns the number of cards left in the deck.
func (d Deck) Len() int {
	return len(d)
}
