package game

// Phase represents the stage of a game.
type Phase string

const (
	PhaseInit        Phase = "init"
	PhaseActiveRound Phase = "active_round"
	PhaseLastRound   Phase = "last_round"
	PhaseFinalPlay   Phase = "final_play"
	PhaseFlip        Phase = "flip"
	PhaseScore       Phase = "score"
	PhaseRank        Phase = "rank"
	PhaseTerminal    Phase = "terminal"
)
