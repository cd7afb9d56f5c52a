package game

import (
	"github.com/ratel-online/parade/parade/card"
)

// Decider supplies a player's choices. Human and computer players differ only
// in how they implement it.
type Decider interface {
	Name() string
	Human() bool
	Play(hand []*card.Card, gameState State) *card.Card
	Discard(hand []*card.Card, gameState State) *card.Card
	Withdraw(gameState State) bool
	NotifyCardsDrawn(drawnCards []*card.Card)
}
