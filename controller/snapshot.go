package controller

import "github.com/battlesnakeio/arcade/rules"

// Snapshot is a read-only copy of the session handed to renderers.
type Snapshot struct {
	Snake      []rules.Point
	Direction  rules.Direction
	Food       rules.Point
	Score      int
	HighScore  int
	Speed      int
	Phase      Phase
	GridWidth  int
	GridHeight int
	Round      int
	DeathCause string
}

// NewBest reports whether the current score ties or beats the best score of
// the process. A zero score never counts.
func (s Snapshot) NewBest() bool {
	return s.Score > 0 && s.Score == s.HighScore
}

// Head returns the first body cell.
func (s Snapshot) Head() rules.Point {
	if len(s.Snake) == 0 {
		return rules.Point{}
	}
	return s.Snake[0]
}
