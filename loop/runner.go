// Package loop drives a session: each iteration drains pending commands,
// advances the session one tick, renders a snapshot and waits for the next
// tick at the session's speed.
package loop

import (
	"context"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Renderer draws a snapshot.
type Renderer interface {
	Render(controller.Snapshot) error
}

// Runner owns the single goroutine that touches the session.
type Runner struct {
	Session  *controller.Session
	Input    <-chan controller.Command
	Renderer Renderer
	Pacer    Pacer
}

// Run plays until a Quit command arrives, the input channel closes or ctx is
// cancelled. Quit and a closed input return nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.Pacer == nil {
		r.Pacer = NewRatePacer(r.Session.Speed())
	}
	if err := r.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !r.drain() {
			log.Info("session ended")
			return nil
		}

		before := r.Session.Phase()
		r.Session.Tick()
		if before != controller.PhaseGameOver && r.Session.Phase() == controller.PhaseGameOver {
			if log.GetLevel() >= log.DebugLevel {
				log.Debug(spew.Sdump(r.Session.Snapshot()))
			}
		}

		if err := r.render(); err != nil {
			return err
		}

		r.Pacer.SetRate(r.Session.Speed())
		if err := r.Pacer.Wait(ctx); err != nil {
			return err
		}
	}
}

// drain hands every queued command to the session without blocking. It
// returns false when the session should stop.
func (r *Runner) drain() bool {
	for {
		select {
		case cmd, ok := <-r.Input:
			if !ok {
				return false
			}
			if !r.Session.Handle(cmd) {
				return false
			}
		default:
			return true
		}
	}
}

func (r *Runner) render() error {
	if r.Renderer == nil {
		return nil
	}
	if err := r.Renderer.Render(r.Session.Snapshot()); err != nil {
		return errors.Wrap(err, "loop: render failed")
	}
	return nil
}
