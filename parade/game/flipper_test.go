package game_test

import (
	"testing"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/event"
	"github.com/ratel-online/parade/parade/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxHolders(t *testing.T) {
	t.Run("two_players_one_apart_suppresses_flipping", func(t *testing.T) {
		alice := newPlayer("Alice", cardsOf(color.Blue, 1, 2, 3)...)
		bob := newPlayer("Bob", cardsOf(color.Blue, 4, 5, 6, 7)...)
		listener := event.NewDummyListener()
		event.ColorTallied.AddListener(listener)

		holders, count := game.MaxHolders([]*game.Player{alice, bob}, color.Blue)

		require.Empty(t, holders)
		require.Equal(t, 4, count)
		require.Equal(t, []interface{}{event.ColorTalliedPayload{
			Color:   color.Blue,
			Max:     4,
			Outcome: event.TallyTwoPlayerRule,
		}}, listener.ReceivedPayloads())
	})

	t.Run("two_players_at_the_threshold_flip", func(t *testing.T) {
		alice := newPlayer("Alice", cardsOf(color.Blue, 1)...)
		bob := newPlayer("Bob", cardsOf(color.Blue, 4, 5, 6)...)

		holders, count := game.MaxHolders([]*game.Player{alice, bob}, color.Blue)

		require.Equal(t, []*game.Player{bob}, holders)
		require.Equal(t, 3, count)
	})

	t.Run("equal_counts_flip_nothing", func(t *testing.T) {
		alice := newPlayer("Alice", cardsOf(color.Red, 1, 2)...)
		bob := newPlayer("Bob", cardsOf(color.Red, 3, 4)...)
		carol := newPlayer("Carol", cardsOf(color.Red, 5, 6)...)
		listener := event.NewDummyListener()
		event.ColorTallied.AddListener(listener)

		holders, _ := game.MaxHolders([]*game.Player{alice, bob, carol}, color.Red)
		require.Empty(t, holders)

		holders, count := game.MaxHolders([]*game.Player{alice, bob, carol}, color.Green)
		require.Empty(t, holders)
		require.Equal(t, 0, count)

		require.Equal(t, []interface{}{
			event.ColorTalliedPayload{Color: color.Red, Max: 2, Outcome: event.TallyAllTied},
			event.ColorTalliedPayload{Color: color.Green, Max: 0, Outcome: event.TallyAllTied},
		}, listener.ReceivedPayloads())
	})

	t.Run("several_players_can_share_the_maximum", func(t *testing.T) {
		alice := newPlayer("Alice", cardsOf(color.Grey, 1, 2)...)
		bob := newPlayer("Bob", cardsOf(color.Grey, 3)...)
		carol := newPlayer("Carol", cardsOf(color.Grey, 5, 6)...)

		holders, count := game.MaxHolders([]*game.Player{alice, bob, carol}, color.Grey)

		require.Equal(t, []*game.Player{alice, carol}, holders)
		require.Equal(t, 2, count)
	})

	t.Run("three_players_one_apart_still_flip", func(t *testing.T) {
		alice := newPlayer("Alice", cardsOf(color.Grey, 1, 2)...)
		bob := newPlayer("Bob", cardsOf(color.Grey, 3)...)
		carol := newPlayer("Carol", cardsOf(color.Grey, 4)...)

		holders, _ := game.MaxHolders([]*game.Player{alice, bob, carol}, color.Grey)

		require.Equal(t, []*game.Player{alice}, holders)
	})
}

func TestFlipCards(t *testing.T) {
	aliceRed := cardsOf(color.Red, 7, 8, 9)
	aliceBlue := cardsOf(color.Blue, 5)
	bobBlue := cardsOf(color.Blue, 2, 3, 4)
	bobGreen := cardsOf(color.Green, 10)
	alice := newPlayer("Alice", append(aliceRed, aliceBlue...)...)
	bob := newPlayer("Bob", append(bobBlue, bobGreen...)...)
	players := []*game.Player{alice, bob}

	flipped := game.FlipCards(players)

	t.Run("each_color_is_decided_on_its_own", func(t *testing.T) {
		require.Equal(t, aliceRed, flipped[alice])
		require.Equal(t, bobBlue, flipped[bob])
		for _, c := range append(aliceRed, bobBlue...) {
			assert.Equal(t, consts.FlippedCardValue, c.Value())
		}
		assert.Equal(t, 5, aliceBlue[0].Value())
		// one card apart between two players
		assert.Equal(t, 10, bobGreen[0].Value())
	})

	t.Run("flipping_again_changes_nothing", func(t *testing.T) {
		game.CalculateScores(players)
		aliceScore, bobScore := alice.Score(), bob.Score()

		again := game.FlipCards(players)
		game.CalculateScores(players)

		require.Empty(t, again)
		require.Equal(t, aliceScore, alice.Score())
		require.Equal(t, bobScore, bob.Score())
		require.Equal(t, 3+5, aliceScore)
		require.Equal(t, 3+10, bobScore)
	})
}

func TestFlipCardsRaisesZeroes(t *testing.T) {
	zero := card.New(color.Purple, 0)
	alice := newPlayer("Alice", zero, card.New(color.Purple, 3), card.New(color.Purple, 4))
	bob := newPlayer("Bob")

	flipped := game.FlipCards([]*game.Player{alice, bob})

	require.Len(t, flipped[alice], 3)
	require.Equal(t, consts.FlippedCardValue, zero.Value())
}
