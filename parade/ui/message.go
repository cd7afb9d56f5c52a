package ui

import (
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/msg"
)

var Message = MessageWriter{}

// MessageWriter prints the texts built by msg to the console.
type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Print(msg.Message.Welcome())
}

func (m MessageWriter) Menu() {
	Print(msg.Message.Menu())
}

func (m MessageWriter) Instructions() {
	Print(msg.Message.Instructions())
}

func (m MessageWriter) Goodbye() {
	Print(msg.Message.Goodbye())
}

func (m MessageWriter) GameOver() {
	Print(msg.Message.GameOver())
}

func (m MessageWriter) PlayerJoined(playerName string) {
	Print(msg.Message.PlayerJoined(playerName))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []*card.Card) {
	Print(msg.Message.HumanPlayerDrewCards(cards))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Print(msg.Message.HumanPlayerTurnStarted(playerName))
}

func (m MessageWriter) HumanPlayerFinalPlay(playerName string) {
	Print(msg.Message.HumanPlayerFinalPlay(playerName))
}

func (m MessageWriter) ComputerThinking(playerName string) {
	Print(msg.Message.ComputerThinking(playerName))
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []*card.Card) {
	Print(msg.Message.PlayerDrewCards(playerName, cards))
}
