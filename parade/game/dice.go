package game

import (
	"math/rand"
	"sort"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/event"
)

type Dice struct {
	rng   *rand.Rand
	sides int
}

func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng, sides: consts.DiceSides}
}

func (d *Dice) Roll() int {
	return d.rng.Intn(d.sides) + 1
}

// DecideStartingPlayer has everyone roll; the highest rollers roll again among
// themselves until a single player is left.
func DecideStartingPlayer(players []*Player, dice *Dice) *Player {
	if len(players) == 0 {
		return nil
	}
	contenders := players
	for len(contenders) > 1 {
		maxRoll := 0
		var best []*Player
		for _, p := range contenders {
			roll := dice.Roll()
			event.DiceRolled.Emit(event.DiceRolledPayload{
				PlayerName: p.Name(),
				Roll:       roll,
				Reason:     event.DiceStartingPlayer,
			})
			if roll > maxRoll {
				maxRoll = roll
				best = []*Player{p}
			} else if roll == maxRoll {
				best = append(best, p)
			}
		}
		contenders = best
	}
	event.StartingPlayerDecided.Emit(event.StartingPlayerDecidedPayload{
		PlayerName: contenders[0].Name(),
	})
	return contenders[0]
}

// BreakTie rolls once for every tied player and returns them by roll, highest
// first. Equal rolls keep their incoming order; there is no re-roll.
func BreakTie(tied []*Player, dice *Dice) []*Player {
	rolls := make(map[*Player]int, len(tied))
	for _, p := range tied {
		roll := dice.Roll()
		rolls[p] = roll
		event.DiceRolled.Emit(event.DiceRolledPayload{
			PlayerName: p.Name(),
			Roll:       roll,
			Reason:     event.DiceTieBreak,
		})
	}
	ordered := make([]*Player, len(tied))
	copy(ordered, tied)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rolls[ordered[i]] > rolls[ordered[j]]
	})
	return ordered
}
