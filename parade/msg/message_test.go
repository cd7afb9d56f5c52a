package msg_test

import (
	"testing"

	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/event"
	"github.com/ratel-online/parade/parade/msg"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	color.SetEnabled(false)

	require.Equal(t, "Alice played [Red 4]!\n", msg.Message.PlayerPlayedCard("Alice", card.New(color.Red, 4)))
	require.Equal(t, "Bot 1 drew a card!\n", msg.Message.PlayerDrewCards("Bot 1", []*card.Card{card.New(color.Red, 4)}))
	require.Equal(t, "Alice took no cards from the parade.\n", msg.Message.PlayerCollectedCards("Alice", nil))
	require.Equal(t, "Alice took [[Red 3] [Red 2]] from the parade!\n",
		msg.Message.PlayerCollectedCards("Alice", []*card.Card{card.New(color.Red, 3), card.New(color.Red, 2)}))
	require.Equal(t, "", msg.Message.PhaseStarted("init"))
	require.Equal(t, "========== LAST ROUND ==========\n", msg.Message.PhaseStarted("last_round"))
}

func TestInstructionsSafeCards(t *testing.T) {
	require.Contains(t, msg.Message.Instructions(), "the last N+1 cards before it are safe")
}

func TestColorTallied(t *testing.T) {
	color.SetEnabled(false)

	require.Equal(t, "Blue: Alice, Bob flip their 3 card(s).\n", msg.Message.ColorTallied(event.ColorTalliedPayload{
		Color:   color.Blue,
		Max:     3,
		Holders: []string{"Alice", "Bob"},
		Outcome: event.TallyFlipped,
	}))
	require.Equal(t, "Green: everyone holds 0, no cards are flipped.\n", msg.Message.ColorTallied(event.ColorTalliedPayload{
		Color:   color.Green,
		Outcome: event.TallyAllTied,
	}))
	require.Contains(t, msg.Message.ColorTallied(event.ColorTalliedPayload{
		Color:   color.Grey,
		Max:     4,
		Outcome: event.TallyTwoPlayerRule,
	}), "less than 2 cards")
}

func TestEndTriggered(t *testing.T) {
	require.Equal(t, "Bob has collected every color! Everyone gets one last turn.\n",
		msg.Message.EndTriggered(event.EndTriggeredPayload{Reason: event.EndAllColors, PlayerName: "Bob"}))
	require.Equal(t, "", msg.Message.EndTriggered(event.EndTriggeredPayload{}))
}
