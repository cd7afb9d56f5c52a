package event

import "github.com/ratel-online/parade/parade/card/color"

var ColorTallied = &colorTalliedEmitter{}

// TallyOutcome is the result of counting one color at flip time.
type TallyOutcome string

const (
	TallyFlipped       TallyOutcome = "flipped"
	TallyAllTied       TallyOutcome = "all_tied"
	TallyTwoPlayerRule TallyOutcome = "two_player_rule"
)

type ColorTalliedPayload struct {
	Color   color.Color
	Max     int
	Holders []string
	Outcome TallyOutcome
}

type ColorTalliedListener interface {
	OnColorTallied(ColorTalliedPayload)
}

type colorTalliedEmitter struct {
	listeners []ColorTalliedListener
}

func (e *colorTalliedEmitter) AddListener(listener ColorTalliedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *colorTalliedEmitter) Emit(payload ColorTalliedPayload) {
	for _, listener := range e.listeners {
		listener.OnColorTallied(payload)
	}
}
