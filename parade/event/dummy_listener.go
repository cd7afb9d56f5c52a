package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

// Listen subscribes the listener to every emitter.
func (l *DummyListener) Listen() *DummyListener {
	CardPlayed.AddListener(l)
	CardsCollected.AddListener(l)
	CardsDrawn.AddListener(l)
	CardDiscarded.AddListener(l)
	PlayerWithdrew.AddListener(l)
	PhaseChanged.AddListener(l)
	TieAnnounced.AddListener(l)
	StartingPlayerDecided.AddListener(l)
	WinnerFound.AddListener(l)
	EndTriggered.AddListener(l)
	DiceRolled.AddListener(l)
	ColorTallied.AddListener(l)
	return l
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardsCollected(payload CardsCollectedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardDiscarded(payload CardDiscardedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnPlayerWithdrew(payload PlayerWithdrewPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnPhaseChanged(payload PhaseChangedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTieAnnounced(payload TieAnnouncedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnStartingPlayerDecided(payload StartingPlayerDecidedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnWinnerFound(payload WinnerFoundPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnEndTriggered(payload EndTriggeredPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnDiceRolled(payload DiceRolledPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnColorTallied(payload ColorTalliedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
