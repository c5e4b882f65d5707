package controller

// Phase is the state of a session. Exactly one phase is active at a time.
type Phase string

const (
	// PhaseReady shows the start screen and waits for Start.
	PhaseReady Phase = "ready"
	// PhasePlaying advances the snake every tick.
	PhasePlaying Phase = "playing"
	// PhasePaused freezes the round until TogglePause.
	PhasePaused Phase = "paused"
	// PhaseGameOver ends the round until Restart.
	PhaseGameOver Phase = "game-over"
)
