package event

import "github.com/ratel-online/parade/parade/card"

var CardsCollected = &cardsCollectedEmitter{}

type CardsCollectedPayload struct {
	PlayerName string
	Cards      []*card.Card
}

type CardsCollectedListener interface {
	OnCardsCollected(CardsCollectedPayload)
}

type cardsCollectedEmitter struct {
	listeners []CardsCollectedListener
}

func (e *cardsCollectedEmitter) AddListener(listener CardsCollectedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsCollectedEmitter) Emit(payload CardsCollectedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsCollected(payload)
	}
}
