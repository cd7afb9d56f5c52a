package event

var TieAnnounced = &tieAnnouncedEmitter{}

type TieAnnouncedPayload struct {
	PlayerNames []string
	Score       int
}

type TieAnnouncedListener interface {
	OnTieAnnounced(TieAnnouncedPayload)
}

type tieAnnouncedEmitter struct {
	listeners []TieAnnouncedListener
}

func (e *tieAnnouncedEmitter) AddListener(listener TieAnnouncedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *tieAnnouncedEmitter) Emit(payload TieAnnouncedPayload) {
	for _, listener := range e.listeners {
		listener.OnTieAnnounced(payload)
	}
}
