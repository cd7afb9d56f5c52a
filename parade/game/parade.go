package game

import (
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
)

// Parade is the shared line of face-up cards. It only grows at the end and
// only shrinks through Play.
type Parade struct {
	cards []*card.Card
}

func NewParade() *Parade {
	return &Parade{cards: make([]*card.Card, 0, consts.InitialParadeSize*2)}
}

// Initialize draws the starting cards of the parade from the deck.
func (p *Parade) Initialize(deck *Deck) error {
	cards, err := deck.Draw(consts.InitialParadeSize)
	if err != nil {
		return err
	}
	for _, c := range cards {
		p.Add(c)
	}
	return nil
}

func (p *Parade) Add(card *card.Card) {
	p.cards = append(p.cards, card)
}

// Eligible returns the cards that playing played would remove, without
// changing the parade.
func (p *Parade) Eligible(played *card.Card) []*card.Card {
	toCount := len(p.cards) - played.Value() - 1
	if toCount < 0 {
		toCount = 0
	}
	var eligible []*card.Card
	for _, candidate := range p.cards[:toCount] {
		if Removable(candidate, played) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible
}

// Play appends played to the parade and removes the cards it made eligible.
// The removed cards are returned in parade order.
func (p *Parade) Play(played *card.Card) []*card.Card {
	eligible := p.Eligible(played)
	p.Add(played)
	p.remove(eligible)
	return eligible
}

func (p *Parade) Last() (*card.Card, error) {
	if len(p.cards) == 0 {
		return nil, consts.ErrorsParadeEmpty
	}
	return p.cards[len(p.cards)-1], nil
}

func (p *Parade) Cards() []*card.Card {
	cards := make([]*card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Parade) Empty() bool {
	return len(p.cards) == 0
}

func (p *Parade) Size() int {
	return len(p.cards)
}

func (p *Parade) remove(cards []*card.Card) {
	if len(cards) == 0 {
		return
	}
	removed := make(map[*card.Card]bool, len(cards))
	for _, c := range cards {
		removed[c] = true
	}
	kept := p.cards[:0]
	for _, c := range p.cards {
		if !removed[c] {
			kept = append(kept, c)
		}
	}
	p.cards = kept
}
