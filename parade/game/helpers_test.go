package game_test

import (
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/game"
)

type scriptedDecider struct {
	name       string
	human      bool
	withdrawAt int
	turns      int
	onDecision func()
	drawn      int
}

func newScripted(name string) *scriptedDecider {
	return &scriptedDecider{name: name, human: true, withdrawAt: -1}
}

func (d *scriptedDecider) Name() string {
	return d.name
}

func (d *scriptedDecider) Human() bool {
	return d.human
}

func (d *scriptedDecider) Play(hand []*card.Card, gameState game.State) *card.Card {
	d.decided()
	return hand[0]
}

func (d *scriptedDecider) Discard(hand []*card.Card, gameState game.State) *card.Card {
	d.decided()
	return hand[len(hand)-1]
}

func (d *scriptedDecider) Withdraw(gameState game.State) bool {
	d.turns++
	return d.turns == d.withdrawAt
}

func (d *scriptedDecider) NotifyCardsDrawn(drawnCards []*card.Card) {
	d.drawn += len(drawnCards)
}

func (d *scriptedDecider) decided() {
	if d.onDecision != nil {
		d.onDecision()
	}
}

func newPlayer(name string, open ...*card.Card) *game.Player {
	p := game.NewPlayer(newScripted(name))
	p.OpenCards().Add(open...)
	return p
}

func cardsOf(c color.Color, values ...int) []*card.Card {
	cards := make([]*card.Card, 0, len(values))
	for _, value := range values {
		cards = append(cards, card.New(c, value))
	}
	return cards
}
