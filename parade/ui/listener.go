package ui

import (
	"sync"

	"github.com/ratel-online/parade/parade/event"
	"github.com/ratel-online/parade/parade/msg"
)

var listenOnce sync.Once

// Listen subscribes the console to game events. Calling it again is a no-op.
func Listen() {
	listenOnce.Do(func() {
		l := consoleListener{}
		event.CardPlayed.AddListener(l)
		event.CardsCollected.AddListener(l)
		event.CardDiscarded.AddListener(l)
		event.PlayerWithdrew.AddListener(l)
		event.PhaseChanged.AddListener(l)
		event.EndTriggered.AddListener(l)
		event.ColorTallied.AddListener(l)
		event.TieAnnounced.AddListener(l)
		event.DiceRolled.AddListener(l)
		event.StartingPlayerDecided.AddListener(l)
		event.WinnerFound.AddListener(l)
	})
}

type consoleListener struct{}

func (consoleListener) OnCardPlayed(payload event.CardPlayedPayload) {
	Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (consoleListener) OnCardsCollected(payload event.CardsCollectedPayload) {
	Print(msg.Message.PlayerCollectedCards(payload.PlayerName, payload.Cards))
}

func (consoleListener) OnCardDiscarded(payload event.CardDiscardedPayload) {
	Print(msg.Message.PlayerDiscardedCard(payload.PlayerName, payload.Card))
}

func (consoleListener) OnPlayerWithdrew(payload event.PlayerWithdrewPayload) {
	Print(msg.Message.PlayerWithdrew(payload.PlayerName, payload.Remaining))
}

func (consoleListener) OnPhaseChanged(payload event.PhaseChangedPayload) {
	Print(msg.Message.PhaseStarted(payload.Phase))
}

func (consoleListener) OnEndTriggered(payload event.EndTriggeredPayload) {
	Print(msg.Message.EndTriggered(payload))
}

func (consoleListener) OnColorTallied(payload event.ColorTalliedPayload) {
	Print(msg.Message.ColorTallied(payload))
}

func (consoleListener) OnTieAnnounced(payload event.TieAnnouncedPayload) {
	Print(msg.Message.TieAnnounced(payload.PlayerNames, payload.Score))
}

func (consoleListener) OnDiceRolled(payload event.DiceRolledPayload) {
	Print(msg.Message.DiceRolled(payload.PlayerName, payload.Roll))
}

func (consoleListener) OnStartingPlayerDecided(payload event.StartingPlayerDecidedPayload) {
	Print(msg.Message.StartingPlayerDecided(payload.PlayerName))
}

func (consoleListener) OnWinnerFound(payload event.WinnerFoundPayload) {
	Print(msg.Message.WinnerFound(payload.PlayerName))
}
