package player

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/game"
	"github.com/ratel-online/parade/parade/ui"
)

type humanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) game.Decider {
	return humanPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p humanPlayer) Human() bool {
	return true
}

func (p humanPlayer) Withdraw(gameState game.State) bool {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(gameState)
	return ui.PromptTurnAction(p.name)
}

func (p humanPlayer) Play(hand []*card.Card, gameState game.State) *card.Card {
	if gameState.Phase != game.PhaseActiveRound {
		ui.Message.HumanPlayerTurnStarted(p.name)
		ui.Println(gameState)
	}
	selected, err := ui.PromptCardSelection(hand, "Select a card to play:")
	if err != nil {
		log.Error(err)
	}
	return selected
}

func (p humanPlayer) Discard(hand []*card.Card, gameState game.State) *card.Card {
	ui.Message.HumanPlayerFinalPlay(p.name)
	ui.Println(gameState)
	selected, err := ui.PromptCardSelection(hand, "Select a card to add to your open cards:")
	if err != nil {
		log.Error(err)
	}
	return selected
}

func (p humanPlayer) NotifyCardsDrawn(cards []*card.Card) {
	ui.Message.HumanPlayerDrewCards(cards)
}
