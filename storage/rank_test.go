package storage

import "testing"

func TestAssignRanks(t *testing.T) {
	entries := []LeaderboardEntry{
		{PlayerName: "a", SetsFound: 10},
		{PlayerName: "b", SetsFound: 7},
		{PlayerName: "c", SetsFound: 3},
	}
	assignRanks(entries)
	for i, want := range []int{1, 2, 3} {
		if entries[i].Rank != want {
			t.Errorf("entry %d rank = %d, expected %d", i, entries[i].Rank, want)
		}
	}
}

func TestAssignRanksTies(t *testing.T) {
	// Competition ranking: ties share a rank, the next distinct count
	// skips past them.
	entries := []LeaderboardEntry{
		{PlayerName: "a", SetsFound: 10},
		{PlayerName: "b", SetsFound: 10},
		{PlayerName: "c", SetsFound: 5},
		{PlayerName: "d", SetsFound: 5},
		{PlayerName: "e", SetsFound: 1},
	}
	assignRanks(entries)
	for i, want := range []int{1, 1, 3, 3, 5} {
		if entries[i].Rank != want {
			t.Errorf("entry %d rank = %d, expected %d", i, entries[i].Rank, want)
		}
	}
}

func TestAssignRanksEmpty(t *testing.T) {
	assignRanks(nil)
	assignRanks([]LeaderboardEntry{})
}
