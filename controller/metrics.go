package controller

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "calls",
			Help:      "Calls processed by the session.",
		},
		[]string{"method"},
	)
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "ticks_total",
			Help:      "Ticks in which the snake moved.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "food_eaten_total",
			Help:      "Food eaten across all rounds.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "games_over_total",
			Help:      "Rounds ended, by collision cause.",
		},
		[]string{"cause"},
	)
	scoreGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "score",
			Help:      "Score of the current round.",
		},
	)
	speedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "speed",
			Help:      "Current tick rate in ticks per second.",
		},
	)
	roundTicks = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "round_ticks",
			Help:      "Number of ticks a round lasted.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(sessionCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(sessionCalls, ticksTotal, foodEaten, gamesOver, scoreGauge, speedGauge, roundTicks)
}
