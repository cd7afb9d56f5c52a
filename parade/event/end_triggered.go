package event

var EndTriggered = &endTriggeredEmitter{}

// EndReason tells which end condition closed the active rounds.
type EndReason string

const (
	EndDeckEmpty    EndReason = "deck_empty"
	EndAllColors    EndReason = "all_colors"
	EndOnePlayer    EndReason = "one_player_left"
	EndNoHumansLeft EndReason = "no_humans_left"
)

type EndTriggeredPayload struct {
	Reason EndReason
	// PlayerName is set for EndAllColors.
	PlayerName string
}

type EndTriggeredListener interface {
	OnEndTriggered(EndTriggeredPayload)
}

type endTriggeredEmitter struct {
	listeners []EndTriggeredListener
}

func (e *endTriggeredEmitter) AddListener(listener EndTriggeredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *endTriggeredEmitter) Emit(payload EndTriggeredPayload) {
	for _, listener := range e.listeners {
		listener.OnEndTriggered(payload)
	}
}
