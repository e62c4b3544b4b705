package game

import (
	"math/rand"
	"testing"
)

func card(n Number, c Color, s Shape, f Shading) Card {
	return Card{Number: n, Color: c, Shape: s, Shading: f}
}

func TestIsMatchAllSame(t *testing.T) {
	c := card(One, Red, Diamond, Solid)
	if !IsMatch(c, c, c) {
		t.Error("three identical cards should match (all-same on every attribute)")
	}
}

func TestIsMatchAllDifferent(t *testing.T) {
	a := card(One, Red, Diamond, Solid)
	b := card(Two, Green, Oval, Striped)
	c := card(Three, Purple, Squiggle, Open)
	if !IsMatch(a, b, c) {
		t.Error("all-different on every attribute should match")
	}
}

func TestIsMatchMixed(t *testing.T) {
	// Same number and color, different shape and shading
	a := card(Two, Green, Diamond, Solid)
	b := card(Two, Green, Oval, Striped)
	c := card(Two, Green, Squiggle, Open)
	if !IsMatch(a, b, c) {
		t.Error("same/same/different/different should match")
	}
}

func TestIsMatchTwoDistinctFails(t *testing.T) {
	// Number is 1, 1, 2 — two distinct values, invalid
	a := card(One, Red, Diamond, Solid)
	b := card(One, Red, Diamond, Striped)
	c := card(Two, Green, Oval, Solid)
	if IsMatch(a, b, c) {
		t.Error("two distinct numbers among three cards should not match")
	}

	// Each attribute individually breaking an otherwise valid triple
	base := [3]Card{
		card(One, Red, Diamond, Solid),
		card(Two, Green, Oval, Striped),
		card(Three, Purple, Squiggle, Open),
	}
	broken := base
	broken[2].Number = Two
	if IsMatch(broken[0], broken[1], broken[2]) {
		t.Error("number 1,2,2 should not match")
	}
	broken = base
	broken[2].Color = Green
	if IsMatch(broken[0], broken[1], broken[2]) {
		t.Error("color red,green,green should not match")
	}
	broken = base
	broken[2].Shape = Oval
	if IsMatch(broken[0], broken[1], broken[2]) {
		t.Error("shape diamond,oval,oval should not match")
	}
	broken = base
	broken[2].Shading = Striped
	if IsMatch(broken[0], broken[1], broken[2]) {
		t.Error("shading solid,striped,striped should not match")
	}
}

func TestIsMatchOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	universe := Universe()
	for trial := 0; trial < 200; trial++ {
		a := universe[rng.Intn(len(universe))]
		b := universe[rng.Intn(len(universe))]
		c := universe[rng.Intn(len(universe))]
		want := IsMatch(a, b, c)
		perms := [][3]Card{
			{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
		}
		for _, p := range perms {
			if IsMatch(p[0], p[1], p[2]) != want {
				t.Fatalf("IsMatch not permutation invariant for %v %v %v", a, b, c)
			}
		}
	}
}

func TestFindMatchReturnsFirstTriple(t *testing.T) {
	// Positions 0,1,2 form a set, and so do 3,4,5; the scan must report
	// the lexicographically first one.
	cards := []Card{
		card(One, Red, Diamond, Solid),
		card(Two, Red, Diamond, Solid),
		card(Three, Red, Diamond, Solid),
		card(One, Green, Oval, Striped),
		card(Two, Green, Oval, Striped),
		card(Three, Green, Oval, Striped),
	}
	i, j, k, ok := FindMatch(cards)
	if !ok {
		t.Fatal("expected a match")
	}
	if i != 0 || j != 1 || k != 2 {
		t.Errorf("expected first triple (0,1,2), got (%d,%d,%d)", i, j, k)
	}
}

func TestFindMatchNone(t *testing.T) {
	// Numbers 1,1,2,2 — any triple has exactly two distinct numbers.
	cards := []Card{
		card(One, Red, Diamond, Solid),
		card(One, Green, Oval, Striped),
		card(Two, Purple, Squiggle, Open),
		card(Two, Red, Oval, Open),
	}
	if _, _, _, ok := FindMatch(cards); ok {
		t.Error("expected no match")
	}
}

func TestFindAllMatches(t *testing.T) {
	cards := []Card{
		card(One, Red, Diamond, Solid),
		card(Two, Red, Diamond, Solid),
		card(Three, Red, Diamond, Solid),
		card(One, Green, Oval, Striped),
		card(Two, Green, Oval, Striped),
		card(Three, Green, Oval, Striped),
	}
	found := FindAllMatches(cards)
	has := func(want [3]int) bool {
		for _, tr := range found {
			if tr == want {
				return true
			}
		}
		return false
	}
	if !has([3]int{0, 1, 2}) {
		t.Error("expected (0,1,2) among matches")
	}
	if !has([3]int{3, 4, 5}) {
		t.Error("expected (3,4,5) among matches")
	}
	for _, tr := range found {
		if !IsMatch(cards[tr[0]], cards[tr[1]], cards[tr[2]]) {
			t.Errorf("reported triple %v is not a match", tr)
		}
	}
	// Lexicographic order of results
	for i := 1; i < len(found); i++ {
		a, b := found[i-1], found[i]
		if !(a[0] < b[0] || (a[0] == b[0] && (a[1] < b[1] || (a[1] == b[1] && a[2] < b[2])))) {
			t.Errorf("matches out of lexicographic order: %v before %v", a, b)
		}
	}
}

func TestFindMatchAgreesWithFindAllMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		deck := NewDeck(rng)
		board := deck.Deal(12)
		i, j, k, ok := FindMatch(board)
		all := FindAllMatches(board)
		if ok != (len(all) > 0) {
			t.Fatalf("FindMatch ok=%v but FindAllMatches found %d", ok, len(all))
		}
		if ok {
			first := all[0]
			if first != [3]int{i, j, k} {
				t.Fatalf("FindMatch returned (%d,%d,%d), first of all matches is %v", i, j, k, first)
			}
		}
	}
}
