package game

// IsMatch reports whether three cards form a valid set: for each of the
// four attributes, the three values must be all identical or all distinct.
// Pure and order-independent.
func IsMatch(a, b, c Card) bool {
	return attributeOK(int(a.Number), int(b.Number), int(c.Number)) &&
		attributeOK(int(a.Color), int(b.Color), int(c.Color)) &&
		attributeOK(int(a.Shape), int(b.Shape), int(c.Shape)) &&
		attributeOK(int(a.Shading), int(b.Shading), int(c.Shading))
}

// attributeOK holds when the three values are all equal or pairwise
// distinct. Exactly two distinct values fails.
func attributeOK(x, y, z int) bool {
	if x == y {
		return y == z
	}
	return x != z && y != z
}

// FindMatch scans all triples i<j<k in lexicographic index order and
// returns the first one that forms a set. The deterministic order matters:
// callers and tests rely on the same board always yielding the same triple.
// O(n³), fine for boards of 12-21 cards.
func FindMatch(cards []Card) (i, j, k int, ok bool) {
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				if IsMatch(cards[i], cards[j], cards[k]) {
					return i, j, k, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// FindAllMatches returns the index triples of every set among cards,
// in lexicographic order.
func FindAllMatches(cards []Card) [][3]int {
	var found [][3]int
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				if IsMatch(cards[i], cards[j], cards[k]) {
					found = append(found, [3]int{i, j, k})
				}
			}
		}
	}
	return found
}
