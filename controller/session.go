// Package controller owns a single snake session: it applies input commands,
// advances the rules engine one tick at a time and hands out read-only
// snapshots for rendering. A session is meant to be driven from a single
// goroutine.
package controller

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Option configures a Session.
type Option func(*Session)

// WithGeometry sets the window and cell sizes the grid is derived from.
func WithGeometry(g Geometry) Option {
	return func(s *Session) { s.geometry = g }
}

// WithRand sets the randomness used for food placement.
func WithRand(rng rules.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSeed seeds food placement. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed == 0 {
			return
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Session is the game session controller. It exclusively owns one snake and
// one food.
type Session struct {
	geometry Geometry
	rng      rules.Rand

	snake *rules.Snake
	food  *rules.Food

	score     int
	highScore int
	speed     int
	phase     Phase

	// firstLaunch stays set until the first round starts. Restart only goes
	// back to the ready screen while it is set.
	firstLaunch bool

	round      int
	roundID    string
	roundTicks int
	deathCause string
}

// New creates a session on the ready screen.
func New(opts ...Option) *Session {
	s := &Session{
		geometry:    DefaultGeometry(),
		phase:       PhaseReady,
		firstLaunch: true,
		speed:       rules.InitialSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.geometry = s.geometry.normalize()
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w, h := s.GridSize()
	s.snake = rules.NewSnake(w, h)
	s.food = rules.NewFood(s.rng, w, h)
	s.food.Respawn(s.rng, s.snake.Body(), w, h)
	s.nextRound()

	speedGauge.Set(float64(s.speed))
	return s
}

// GridSize derives the grid from the current window size.
func (s *Session) GridSize() (width, height int) {
	return s.geometry.Grid()
}

// Handle applies one command. It returns false once the session should end.
func (s *Session) Handle(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		s.logger().Info("quit")
		return false
	case Resize:
		s.geometry = s.geometry.Resize(c.Width, c.Height)
		w, h := s.GridSize()
		s.logger().WithFields(log.Fields{
			"width":  w,
			"height": h,
		}).Debug("grid resized")
	case SetDirection:
		if s.phase != PhasePlaying {
			return true
		}
		if !s.snake.ChangeDirection(c.Direction) {
			s.logger().WithField("direction", c.Direction).Debug("reversal ignored")
		}
	case TogglePause:
		switch s.phase {
		case PhasePlaying:
			s.setPhase(PhasePaused)
		case PhasePaused:
			s.setPhase(PhasePlaying)
		}
	case Start:
		if s.phase == PhaseReady {
			s.firstLaunch = false
			s.setPhase(PhasePlaying)
		}
	case Restart:
		if s.phase == PhaseGameOver {
			s.reset()
		}
	}
	return true
}

// Tick advances the session one step. Only a playing session moves.
func (s *Session) Tick() {
	defer instrument("Tick")()
	if s.phase != PhasePlaying {
		return
	}

	s.snake.Update()
	s.roundTicks++
	ticksTotal.Inc()

	w, h := s.GridSize()
	if s.snake.Head() == s.food.Position {
		s.score++
		s.snake.Grow(1)
		s.food.Respawn(s.rng, s.snake.Body(), w, h)
		s.speed = rules.SpeedForScore(s.score)

		foodEaten.Inc()
		scoreGauge.Set(float64(s.score))
		speedGauge.Set(float64(s.speed))
		s.logger().WithField("food", s.food.Position).Info("snake ate")
	}

	if cause := s.snake.CollisionCause(w, h); cause != "" {
		s.gameOver(cause)
	}
}

// Snapshot copies the state a renderer needs.
func (s *Session) Snapshot() Snapshot {
	w, h := s.GridSize()
	return Snapshot{
		Snake:      s.snake.Body(),
		Direction:  s.snake.Direction(),
		Food:       s.food.Position,
		Score:      s.score,
		HighScore:  s.highScore,
		Speed:      s.speed,
		Phase:      s.phase,
		GridWidth:  w,
		GridHeight: h,
		Round:      s.round,
		DeathCause: s.deathCause,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Speed returns the current tick rate in ticks per second.
func (s *Session) Speed() int { return s.speed }

// Score returns the score of the current round.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this process.
func (s *Session) HighScore() int { return s.highScore }

func (s *Session) gameOver(cause string) {
	s.deathCause = cause
	if s.score > s.highScore {
		s.highScore = s.score
	}
	gamesOver.WithLabelValues(cause).Inc()
	roundTicks.Observe(float64(s.roundTicks))

	s.logger().WithFields(log.Fields{
		"cause":     cause,
		"head":      s.snake.Head(),
		"highScore": s.highScore,
	}).Info("game over")
	s.setPhase(PhaseGameOver)
}

// reset starts a new round on the current grid.
func (s *Session) reset() {
	w, h := s.GridSize()
	s.snake.Reset(w, h)
	s.food.Respawn(s.rng, s.snake.Body(), w, h)
	s.score = 0
	s.speed = rules.InitialSpeed
	s.deathCause = ""
	s.nextRound()

	scoreGauge.Set(0)
	speedGauge.Set(float64(s.speed))

	if s.firstLaunch {
		s.firstLaunch = false
		s.setPhase(PhaseReady)
		return
	}
	s.setPhase(PhasePlaying)
}

func (s *Session) nextRound() {
	s.round++
	s.roundID = uuid.NewV4().String()
	s.roundTicks = 0
}

func (s *Session) setPhase(p Phase) {
	s.logger().WithFields(log.Fields{
		"from": s.phase,
		"to":   p,
	}).Info("phase change")
	s.phase = p
}

func (s *Session) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"RoundID": s.roundID,
		"Round":   s.round,
		"Score":   s.score,
		"Speed":   s.speed,
	})
}
