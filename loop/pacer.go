package loop

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer blocks between ticks so the loop runs at a given rate.
type Pacer interface {
	SetRate(ticksPerSecond int)
	Wait(ctx context.Context) error
}

// RatePacer paces ticks with a token bucket holding a single token, so the
// first tick is immediate and every later one waits 1/rate seconds.
type RatePacer struct {
	limiter *rate.Limiter
	current int
}

// NewRatePacer returns a pacer running at ticksPerSecond.
func NewRatePacer(ticksPerSecond int) *RatePacer {
	return &RatePacer{
		limiter: rate.NewLimiter(rate.Limit(ticksPerSecond), 1),
		current: ticksPerSecond,
	}
}

// SetRate changes the tick rate. Rates below one tick per second are raised
// to one.
func (p *RatePacer) SetRate(ticksPerSecond int) {
	if ticksPerSecond < 1 {
		ticksPerSecond = 1
	}
	if ticksPerSecond == p.current {
		return
	}
	p.current = ticksPerSecond
	p.limiter.SetLimit(rate.Limit(ticksPerSecond))
}

// Rate returns the current tick rate.
func (p *RatePacer) Rate() int { return p.current }

// Wait blocks until the next tick is due or ctx is done.
func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
