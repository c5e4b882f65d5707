package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func snakeWithBody(body ...Point) *Snake {
	return &Snake{
		body:          body,
		direction:     Right,
		nextDirection: Right,
	}
}

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		s := snakeWithBody(p, Point{X: 1, Y: 1})
		require.True(t, s.CheckCollision(20, 20), p.String())
		require.Equal(t, DeathCauseWallCollision, s.CollisionCause(20, 20))
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	s := snakeWithBody(
		Point{X: 2, Y: 2},
		Point{X: 3, Y: 2},
		Point{X: 3, Y: 3},
		Point{X: 2, Y: 3},
		Point{X: 2, Y: 2},
	)
	require.True(t, s.CheckCollision(20, 20))
	require.Equal(t, DeathCauseSnakeSelfCollision, s.CollisionCause(20, 20))
}

func TestNoDeathInsideGrid(t *testing.T) {
	s := snakeWithBody(
		Point{X: 0, Y: 0},
		Point{X: 1, Y: 0},
		Point{X: 2, Y: 0},
	)
	require.False(t, s.CheckCollision(20, 20))
	require.Equal(t, "", s.CollisionCause(20, 20))

	s = snakeWithBody(Point{X: 19, Y: 19}, Point{X: 18, Y: 19})
	require.False(t, s.CheckCollision(20, 20))
}

func TestCollisionIgnoresHeadItself(t *testing.T) {
	s := snakeWithBody(Point{X: 5, Y: 5})
	require.False(t, s.CheckCollision(20, 20))
}

func TestCollisionHonoursGridBounds(t *testing.T) {
	// same head, different grid sizes (window resized mid-game)
	s := snakeWithBody(Point{X: 25, Y: 10}, Point{X: 24, Y: 10})
	require.False(t, s.CheckCollision(40, 30))
	require.True(t, s.CheckCollision(20, 30))
}
