package event_test

import (
	"testing"

	"github.com/ratel-online/parade/parade/event"
	"github.com/stretchr/testify/require"
)

func TestDiceRolled(t *testing.T) {
	listener := event.NewDummyListener().Listen()

	event.DiceRolled.Emit(event.DiceRolledPayload{PlayerName: "Bot 1", Roll: 6, Reason: event.DiceTieBreak})
	event.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: "Bot 1", Score: 12})

	require.Equal(t, []interface{}{
		event.DiceRolledPayload{PlayerName: "Bot 1", Roll: 6, Reason: event.DiceTieBreak},
		event.WinnerFoundPayload{PlayerName: "Bot 1", Score: 12},
	}, listener.ReceivedPayloads())
}
