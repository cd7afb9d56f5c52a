package game

import (
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
)

// Collection holds a player's open cards grouped by color.
type Collection struct {
	cards map[color.Color][]*card.Card
}

func NewCollection() *Collection {
	return &Collection{cards: make(map[color.Color][]*card.Card)}
}

func (c *Collection) Add(cards ...*card.Card) {
	for _, added := range cards {
		c.cards[added.Color()] = append(c.cards[added.Color()], added)
	}
}

func (c *Collection) Cards(cardColor color.Color) []*card.Card {
	cards := make([]*card.Card, len(c.cards[cardColor]))
	copy(cards, c.cards[cardColor])
	return cards
}

func (c *Collection) Count(cardColor color.Color) int {
	return len(c.cards[cardColor])
}

// All lists every open card, colors in their fixed order.
func (c *Collection) All() []*card.Card {
	var cards []*card.Card
	for _, cardColor := range color.All() {
		cards = append(cards, c.cards[cardColor]...)
	}
	return cards
}

func (c *Collection) Total() int {
	total := 0
	for _, cards := range c.cards {
		total += len(cards)
	}
	return total
}

// ColorCount is the number of distinct colors with at least one open card.
func (c *Collection) ColorCount() int {
	count := 0
	for _, cards := range c.cards {
		if len(cards) > 0 {
			count++
		}
	}
	return count
}

func (c *Collection) HasAllColors() bool {
	for _, cardColor := range color.All() {
		if len(c.cards[cardColor]) == 0 {
			return false
		}
	}
	return true
}

func (c *Collection) Sum() int {
	return card.Sum(c.All())
}
