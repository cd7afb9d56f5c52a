package event

var PhaseChanged = &phaseChangedEmitter{}

type PhaseChangedPayload struct {
	Phase string
}

type PhaseChangedListener interface {
	OnPhaseChanged(PhaseChangedPayload)
}

type phaseChangedEmitter struct {
	listeners []PhaseChangedListener
}

func (e *phaseChangedEmitter) AddListener(listener PhaseChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *phaseChangedEmitter) Emit(payload PhaseChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnPhaseChanged(payload)
	}
}
