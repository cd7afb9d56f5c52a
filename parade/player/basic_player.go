package player

import (
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/ui"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) NotifyCardsDrawn(cards []*card.Card) {
	ui.Message.PlayerDrewCards(p.name, cards)
}
