package game

import (
	"github.com/ratel-online/parade/parade/event"
)

// CheckEndGame reports whether the active rounds are over: the deck is empty
// or some player holds an open card of every color.
func CheckEndGame(deck *Deck, players []*Player) bool {
	if deck.Empty() {
		event.EndTriggered.Emit(event.EndTriggeredPayload{Reason: event.EndDeckEmpty})
		return true
	}
	for _, p := range players {
		if p.OpenCards().HasAllColors() {
			event.EndTriggered.Emit(event.EndTriggeredPayload{
				Reason:     event.EndAllColors,
				PlayerName: p.Name(),
			})
			return true
		}
	}
	return false
}
