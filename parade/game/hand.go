package game

import (
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
)

// Hand holds a player's closed cards in the order they were received.
type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, consts.InitialHandSize)}
}

func (h *Hand) AddCards(cards []*card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched *card.Card) bool {
	for _, c := range h.cards {
		if c == searched {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCard takes the given card out of the hand, keeping the order of the
// rest. It reports whether the card was held.
func (h *Hand) RemoveCard(removed *card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand == removed {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
