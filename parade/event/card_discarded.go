package event

import "github.com/ratel-online/parade/parade/card"

var CardDiscarded = &cardDiscardedEmitter{}

type CardDiscardedPayload struct {
	PlayerName string
	Card       *card.Card
}

type CardDiscardedListener interface {
	OnCardDiscarded(CardDiscardedPayload)
}

type cardDiscardedEmitter struct {
	listeners []CardDiscardedListener
}

func (e *cardDiscardedEmitter) AddListener(listener CardDiscardedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDiscardedEmitter) Emit(payload CardDiscardedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDiscarded(payload)
	}
}
