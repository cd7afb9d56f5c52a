package card

import (
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card/color"
)

// Card is a colored value. The color never changes; the value changes at most
// once, when the card is flipped at the end of the game.
type Card struct {
	color   color.Color
	value   int
	flipped bool
}

func New(color color.Color, value int) *Card {
	return &Card{
		color: color,
		value: value,
	}
}

func (c *Card) Color() color.Color {
	return c.color
}

func (c *Card) Value() int {
	return c.value
}

func (c *Card) Flipped() bool {
	return c.flipped
}

// Flip turns the card face down, overwriting its value with the flipped value.
// It reports false when the card was already flipped.
func (c *Card) Flip() bool {
	if c.flipped {
		return false
	}
	c.value = consts.FlippedCardValue
	c.flipped = true
	return true
}

func (c *Card) String() string {
	return c.color.Paintf("[%s %d]", c.color.Name(), c.value)
}

// Sum adds up the current values of cards.
func Sum(cards []*Card) int {
	total := 0
	for _, card := range cards {
		total += card.value
	}
	return total
}
