package game

import (
	"github.com/ratel-online/parade/parade/card"
)

// Removable reports whether a candidate outside the safe zone leaves the
// parade when played joins it.
func Removable(candidate *card.Card, played *card.Card) bool {
	return candidate.Color() == played.Color() || candidate.Value() <= played.Value()
}
