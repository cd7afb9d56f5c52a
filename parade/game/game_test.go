package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/event"
	"github.com/ratel-online/parade/parade/game"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("needs_two_to_six_players", func(t *testing.T) {
		_, err := game.New([]game.Decider{newScripted("Alice")}, rng)
		require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)

		seven := make([]game.Decider, 0, 7)
		for _, name := range []string{"A1", "B1", "C1", "D1", "E1", "F1", "G1"} {
			seven = append(seven, newScripted(name))
		}
		_, err = game.New(seven, rng)
		require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)
	})

	t.Run("rejects_duplicate_names", func(t *testing.T) {
		_, err := game.New([]game.Decider{newScripted("Alice"), newScripted("Alice")}, rng)
		require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)
	})

	t.Run("starts_with_a_full_deck", func(t *testing.T) {
		g, err := game.New([]game.Decider{newScripted("Alice"), newScripted("Bob")}, rng)
		require.NoError(t, err)
		require.Equal(t, game.DeckSize(), g.Deck().Size())
		require.Equal(t, game.PhaseInit, g.Phase())
		require.NotEmpty(t, g.ID().String())
	})
}

func TestSetup(t *testing.T) {
	g, err := game.New([]game.Decider{newScripted("Alice"), newScripted("Bob"), newScripted("Carol")}, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	listener := event.NewDummyListener()
	event.StartingPlayerDecided.AddListener(listener)

	require.NoError(t, g.Setup())

	require.Equal(t, []interface{}{
		event.StartingPlayerDecidedPayload{PlayerName: g.Players()[0].Name()},
	}, listener.ReceivedPayloads())
	for _, p := range g.Players() {
		require.Len(t, p.Hand(), consts.InitialHandSize)
	}
	require.Equal(t, consts.InitialParadeSize, g.Parade().Size())
	require.Equal(t, game.DeckSize()-consts.InitialParadeSize-3*consts.InitialHandSize, g.Deck().Size())
	require.Equal(t, game.DeckSize(), g.CardCount())
}

func TestRun(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		deciders := []*scriptedDecider{newScripted("Alice"), newScripted("Bob"), newScripted("Carol"), newScripted("Dave")}
		g, err := game.New([]game.Decider{deciders[0], deciders[1], deciders[2], deciders[3]}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		decisions := 0
		for _, d := range deciders {
			d.onDecision = func() {
				decisions++
				require.Equal(t, game.DeckSize(), g.CardCount())
			}
		}
		listener := event.NewDummyListener()
		event.PhaseChanged.AddListener(listener)

		result, err := g.Run()
		require.NoError(t, err)

		require.False(t, result.Abandoned)
		require.NotNil(t, result.Winner)
		require.Len(t, result.Ranking, 4)
		require.Same(t, result.Winner, result.Ranking[0])
		require.Equal(t, game.PhaseTerminal, g.Phase())
		require.Equal(t, game.DeckSize(), g.CardCount())
		require.Greater(t, decisions, 0)

		for _, p := range result.Ranking {
			require.Len(t, p.Hand(), consts.InitialHandSize-1-consts.FinalPlayMoves)
			require.Equal(t, p.OpenCards().Sum(), p.Score())
			require.LessOrEqual(t, result.Winner.Score(), p.Score())
		}

		phases := make([]interface{}, 0)
		for _, phase := range []game.Phase{
			game.PhaseInit,
			game.PhaseActiveRound,
			game.PhaseLastRound,
			game.PhaseFinalPlay,
			game.PhaseFlip,
			game.PhaseScore,
			game.PhaseRank,
			game.PhaseTerminal,
		} {
			phases = append(phases, event.PhaseChangedPayload{Phase: string(phase)})
		}
		require.Equal(t, phases, listener.ReceivedPayloads())
	}
}

func TestRunIsReproducible(t *testing.T) {
	play := func() []string {
		g, err := game.New([]game.Decider{newScripted("Alice"), newScripted("Bob")}, rand.New(rand.NewSource(77)))
		require.NoError(t, err)
		result, err := g.Run()
		require.NoError(t, err)
		return game.Order(result.Ranking).Names()
	}
	require.Equal(t, play(), play())
}

func TestRunAbandoned(t *testing.T) {
	t.Run("one_player_left", func(t *testing.T) {
		alice, bob := newScripted("Alice"), newScripted("Bob")
		alice.withdrawAt = 1
		g, err := game.New([]game.Decider{alice, bob}, rand.New(rand.NewSource(4)))
		require.NoError(t, err)
		listener := event.NewDummyListener()
		event.EndTriggered.AddListener(listener)

		result, err := g.Run()
		require.NoError(t, err)

		require.True(t, result.Abandoned)
		require.Nil(t, result.Winner)
		require.Equal(t, []string{"Bob"}, game.Order(result.Ranking).Names())
		require.Equal(t, []string{"Alice"}, game.Order(g.Withdrawn()).Names())
		require.Equal(t, game.PhaseTerminal, g.Phase())
		require.Equal(t, game.DeckSize(), g.CardCount())
		require.Equal(t, []interface{}{
			event.EndTriggeredPayload{Reason: event.EndOnePlayer},
		}, listener.ReceivedPayloads())
	})

	t.Run("no_humans_left", func(t *testing.T) {
		alice, bot1, bot2 := newScripted("Alice"), newScripted("Bot 1"), newScripted("Bot 2")
		alice.withdrawAt = 1
		bot1.human = false
		bot2.human = false
		g, err := game.New([]game.Decider{alice, bot1, bot2}, rand.New(rand.NewSource(4)))
		require.NoError(t, err)
		listener := event.NewDummyListener()
		event.EndTriggered.AddListener(listener)

		result, err := g.Run()
		require.NoError(t, err)

		require.True(t, result.Abandoned)
		require.Len(t, result.Ranking, 2)
		require.Equal(t, []interface{}{
			event.EndTriggeredPayload{Reason: event.EndNoHumansLeft},
		}, listener.ReceivedPayloads())
	})
}
