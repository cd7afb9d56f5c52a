package game

import (
	"sort"
)

// CalculateScores recomputes every player's score from scratch.
func CalculateScores(players []*Player) {
	for _, p := range players {
		p.CalculateScore()
	}
}

// Compare orders players by score, then total open cards, then number of
// colors collected. Lower is better on every key.
func Compare(a, b *Player) int {
	if result := compareInts(a.Score(), b.Score()); result != 0 {
		return result
	}
	if result := compareInts(a.open.Total(), b.open.Total()); result != 0 {
		return result
	}
	return compareInts(a.open.ColorCount(), b.open.ColorCount())
}

// Rank returns a new slice of the players, best first. Players that compare
// equal keep their relative order.
func Rank(players []*Player) []*Player {
	ranked := make([]*Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) < 0
	})
	return ranked
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
