package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/parade/parade/card"
)

// State is the snapshot of a game handed to a Decider.
type State struct {
	Phase             Phase
	Parade            []*card.Card
	DeckSize          int
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	OpenCards         map[string][]*card.Card
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Parade: %s", s.Parade))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s)", s.DeckSize))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d open card(s))", playerName, len(s.OpenCards[playerName]))
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
