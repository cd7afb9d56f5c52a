package game

import (
	"math/rand"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
)

// Deck holds one card per (color, value) pair. Cards are drawn from the end of
// the slice.
type Deck struct {
	cards []*card.Card
}

func NewDeck() *Deck {
	deck := &Deck{}
	fillDeck(deck)
	return deck
}

// DeckSize is the number of cards in a full deck.
func DeckSize() int {
	return color.Count() * (consts.MaxCardValue - consts.MinCardValue + 1)
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) DrawOne() (*card.Card, error) {
	if len(d.cards) == 0 {
		return nil, consts.ErrorsDeckEmpty
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Draw takes amount cards from the top, or none at all when the deck is short.
func (d *Deck) Draw(amount int) ([]*card.Card, error) {
	if len(d.cards) < amount {
		return nil, consts.ErrorsDeckEmpty
	}
	cards := make([]*card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.DrawOne()
		if err != nil {
			return nil, err
		}
		cards = append(cards, drawn)
	}
	return cards, nil
}

func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func fillDeck(deck *Deck) {
	cards := make([]*card.Card, 0, DeckSize())
	for _, cardColor := range color.All() {
		cards = append(cards, createColorCards(cardColor)...)
	}
	deck.cards = append(deck.cards, cards...)
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := make([]*card.Card, 0, consts.MaxCardValue-consts.MinCardValue+1)
	for value := consts.MinCardValue; value <= consts.MaxCardValue; value++ {
		cards = append(cards, card.New(cardColor, value))
	}
	return cards
}
