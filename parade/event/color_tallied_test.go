package event_test

import (
	"testing"

	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/event"
	"github.com/stretchr/testify/require"
)

func TestColorTallied(t *testing.T) {
	listener := event.NewDummyListener()
	event.ColorTallied.AddListener(listener)

	payloads := []event.ColorTalliedPayload{
		{
			Color:   color.Blue,
			Max:     4,
			Holders: []string{"Alice"},
			Outcome: event.TallyTwoPlayerRule,
		},
		{
			Color:   color.Green,
			Max:     0,
			Outcome: event.TallyAllTied,
		},
	}

	for _, payload := range payloads {
		event.ColorTallied.Emit(payload)
	}

	require.Equal(t, []interface{}{payloads[0], payloads[1]}, listener.ReceivedPayloads())
}
