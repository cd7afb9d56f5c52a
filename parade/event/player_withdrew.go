package event

var PlayerWithdrew = &playerWithdrewEmitter{}

type PlayerWithdrewPayload struct {
	PlayerName string
	Remaining  []string
}

type PlayerWithdrewListener interface {
	OnPlayerWithdrew(PlayerWithdrewPayload)
}

type playerWithdrewEmitter struct {
	listeners []PlayerWithdrewListener
}

func (e *playerWithdrewEmitter) AddListener(listener PlayerWithdrewListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerWithdrewEmitter) Emit(payload PlayerWithdrewPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerWithdrew(payload)
	}
}
