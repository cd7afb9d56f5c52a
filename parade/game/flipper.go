package game

import (
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/event"
)

// FlipCards flips, color by color, every open card held by the players with
// the most cards of that color. The cards flipped by this call are returned
// per player; cards flipped earlier are left alone.
func FlipCards(players []*Player) map[*Player][]*card.Card {
	flipped := make(map[*Player][]*card.Card)
	for _, cardColor := range color.All() {
		holders, _ := MaxHolders(players, cardColor)
		for _, p := range holders {
			for _, c := range p.open.cards[cardColor] {
				if c.Flip() {
					flipped[p] = append(flipped[p], c)
				}
			}
		}
	}
	return flipped
}

// MaxHolders returns the players whose open cards of cardColor get flipped,
// along with the highest count. No one qualifies when every player holds the
// same count, or when exactly two players differ by less than the threshold.
func MaxHolders(players []*Player, cardColor color.Color) ([]*Player, int) {
	if len(players) == 0 {
		return nil, 0
	}

	maxCount := 0
	var holders []*Player
	allTied := true
	firstCount := players[0].open.Count(cardColor)
	for _, p := range players {
		count := p.open.Count(cardColor)
		if count != firstCount {
			allTied = false
		}
		if count > maxCount {
			maxCount = count
			holders = []*Player{p}
		} else if count == maxCount {
			holders = append(holders, p)
		}
	}

	if allTied {
		tally(cardColor, maxCount, nil, event.TallyAllTied)
		return nil, maxCount
	}

	if len(players) == 2 {
		difference := players[0].open.Count(cardColor) - players[1].open.Count(cardColor)
		if difference < 0 {
			difference = -difference
		}
		if difference != 0 && difference < consts.TwoPlayerFlipThreshold {
			tally(cardColor, maxCount, nil, event.TallyTwoPlayerRule)
			return nil, maxCount
		}
	}

	tally(cardColor, maxCount, holders, event.TallyFlipped)
	return holders, maxCount
}

func tally(cardColor color.Color, maxCount int, holders []*Player, outcome event.TallyOutcome) {
	var names []string
	if len(holders) > 0 {
		names = Order(holders).Names()
	}
	event.ColorTallied.Emit(event.ColorTalliedPayload{
		Color:   cardColor,
		Max:     maxCount,
		Holders: names,
		Outcome: outcome,
	})
}
