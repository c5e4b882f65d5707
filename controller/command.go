package controller

import "github.com/battlesnakeio/arcade/rules"

// Command is an abstract input decoded by the presentation layer. Commands
// are passed by value.
type Command interface {
	command()
}

// Quit ends the session loop from any phase.
type Quit struct{}

// Resize reports a new window size, in the same units as Geometry.
type Resize struct {
	Width  int
	Height int
}

// SetDirection asks the snake to turn before the next tick.
type SetDirection struct {
	Direction rules.Direction
}

// TogglePause switches between playing and paused.
type TogglePause struct{}

// Start leaves the ready screen.
type Start struct{}

// Restart begins a new round after game over.
type Restart struct{}

func (Quit) command()         {}
func (Resize) command()       {}
func (SetDirection) command() {}
func (TogglePause) command()  {}
func (Start) command()        {}
func (Restart) command()      {}
