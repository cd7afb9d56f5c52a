package player

import (
	"math/rand"

	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/game"
	"github.com/ratel-online/parade/parade/ui"
)

// computerPlayer picks uniformly among its cards and never quits.
type computerPlayer struct {
	basicPlayer
	rng *rand.Rand
}

func NewComputerPlayer(name string, rng *rand.Rand) game.Decider {
	return computerPlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p computerPlayer) Human() bool {
	return false
}

func (p computerPlayer) Withdraw(gameState game.State) bool {
	return false
}

func (p computerPlayer) Play(hand []*card.Card, gameState game.State) *card.Card {
	ui.Message.ComputerThinking(p.name)
	return p.pick(hand)
}

func (p computerPlayer) Discard(hand []*card.Card, gameState game.State) *card.Card {
	return p.pick(hand)
}

func (p computerPlayer) pick(hand []*card.Card) *card.Card {
	if len(hand) == 0 {
		return nil
	}
	return hand[p.rng.Intn(len(hand))]
}
