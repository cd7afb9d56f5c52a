package event

var DiceRolled = &diceRolledEmitter{}

type DiceReason string

const (
	DiceStartingPlayer DiceReason = "starting_player"
	DiceTieBreak       DiceReason = "tie_break"
)

type DiceRolledPayload struct {
	PlayerName string
	Roll       int
	Reason     DiceReason
}

type DiceRolledListener interface {
	OnDiceRolled(DiceRolledPayload)
}

type diceRolledEmitter struct {
	listeners []DiceRolledListener
}

func (e *diceRolledEmitter) AddListener(listener DiceRolledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *diceRolledEmitter) Emit(payload DiceRolledPayload) {
	for _, listener := range e.listeners {
		listener.OnDiceRolled(payload)
	}
}
