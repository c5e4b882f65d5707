package commands

import (
	"context"
	"unicode"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var arrowKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.Up,
	termbox.KeyArrowDown:  rules.Down,
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowRight: rules.Right,
}

var letterKeys = map[rune]rules.Direction{
	'w': rules.Up,
	's': rules.Down,
	'a': rules.Left,
	'd': rules.Right,
}

// decodeEvent turns a terminal event into a command. Space means start on the
// ready screen and restart after game over, so it needs the current phase.
func decodeEvent(ev termbox.Event, phase controller.Phase, l layout) (controller.Command, bool) {
	switch ev.Type {
	case termbox.EventResize:
		return l.resize(ev.Width, ev.Height), true
	case termbox.EventKey:
	default:
		return nil, false
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return controller.Quit{}, true
	case termbox.KeySpace:
		return spaceCommand(phase)
	}
	if d, ok := arrowKeys[ev.Key]; ok {
		return controller.SetDirection{Direction: d}, true
	}

	ch := unicode.ToLower(ev.Ch)
	if d, ok := letterKeys[ch]; ok {
		return controller.SetDirection{Direction: d}, true
	}
	switch ch {
	case 'p':
		return controller.TogglePause{}, true
	case ' ':
		return spaceCommand(phase)
	}
	return nil, false
}

func spaceCommand(phase controller.Phase) (controller.Command, bool) {
	switch phase {
	case controller.PhaseReady:
		return controller.Start{}, true
	case controller.PhaseGameOver:
		return controller.Restart{}, true
	}
	return nil, false
}

// pumpEvents feeds decoded terminal events to the loop until the terminal is
// interrupted or ctx is done. Key presses beyond the limiter's rate are
// dropped; quit and resize always go through.
func pumpEvents(ctx context.Context, out chan<- controller.Command, holder *snapshotHolder, l layout, limiter *rate.Limiter) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			log.WithError(ev.Err).Warn("terminal event error")
			continue
		}

		cmd, ok := decodeEvent(ev, holder.phase(), l)
		if !ok {
			continue
		}
		if !admit(cmd, limiter) {
			log.WithField("key", ev.Key).Debug("key dropped")
			continue
		}

		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func admit(cmd controller.Command, limiter *rate.Limiter) bool {
	switch cmd.(type) {
	case controller.Quit, controller.Resize:
		return true
	}
	return limiter.Allow()
}
