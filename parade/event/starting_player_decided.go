package event

var StartingPlayerDecided = &startingPlayerDecidedEmitter{}

type StartingPlayerDecidedPayload struct {
	PlayerName string
}

type StartingPlayerDecidedListener interface {
	OnStartingPlayerDecided(StartingPlayerDecidedPayload)
}

type startingPlayerDecidedEmitter struct {
	listeners []StartingPlayerDecidedListener
}

func (e *startingPlayerDecidedEmitter) AddListener(listener StartingPlayerDecidedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *startingPlayerDecidedEmitter) Emit(payload StartingPlayerDecidedPayload) {
	for _, listener := range e.listeners {
		listener.OnStartingPlayerDecided(payload)
	}
}
