package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceRand replays fixed values and counts how often it was asked.
type sequenceRand struct {
	values []int
	calls  int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func TestGenerateFoodWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		p := GenerateFood(rng, 7, 3)
		require.True(t, p.In(7, 3), p.String())
	}
}

func TestGenerateFoodSingleCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, Point{X: 0, Y: 0}, GenerateFood(rng, 1, 1))
}

func TestNewFood(t *testing.T) {
	f := NewFood(&sequenceRand{values: []int{4, 2}}, 40, 30)
	require.Equal(t, Point{X: 4, Y: 2}, f.Position)
	require.Equal(t, 40, f.Width)
	require.Equal(t, 30, f.Height)
}

func TestRespawnAvoidsOccupiedCells(t *testing.T) {
	occupied := []Point{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x == 2 && y == 3 {
				continue
			}
			occupied = append(occupied, Point{X: x, Y: y})
		}
	}

	rng := rand.New(rand.NewSource(42))
	f := NewFood(rng, 4, 4)
	for i := 0; i < 50; i++ {
		f.Respawn(rng, occupied, 4, 4)
		require.Equal(t, Point{X: 2, Y: 3}, f.Position)
	}
}

func TestRespawnNeverReturnsOccupied(t *testing.T) {
	s := NewSnake(40, 30)
	s.Grow(20)
	for i := 0; i < 20; i++ {
		s.Update()
	}

	rng := rand.New(rand.NewSource(7))
	f := NewFood(rng, 40, 30)
	for i := 0; i < 200; i++ {
		f.Respawn(rng, s.Body(), 40, 30)
		require.False(t, s.Contains(f.Position), f.Position.String())
		require.True(t, f.Position.In(40, 30))
	}
}

func TestRespawnFullGridFallsBack(t *testing.T) {
	occupied := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	}
	rng := &sequenceRand{values: []int{1, 1}}
	f := &Food{Position: Point{X: 1, Y: 1}}
	f.Respawn(rng, occupied, 2, 2)
	require.Equal(t, FallbackFood, f.Position)
	require.Equal(t, Point{X: 0, Y: 0}, f.Position)
	require.Equal(t, 2*MaxFoodAttempts, rng.calls, "two draws per attempt")
}

func TestRespawnTakesFirstFreeCandidate(t *testing.T) {
	occupied := []Point{{X: 1, Y: 1}}
	rng := &sequenceRand{values: []int{1, 1, 1, 1, 3, 0}}
	f := &Food{}
	f.Respawn(rng, occupied, 5, 5)
	require.Equal(t, Point{X: 3, Y: 0}, f.Position)
	require.Equal(t, 6, rng.calls)
}

func TestRespawnRecordsBounds(t *testing.T) {
	f := &Food{}
	f.Respawn(rand.New(rand.NewSource(3)), nil, 12, 9)
	require.Equal(t, 12, f.Width)
	require.Equal(t, 9, f.Height)
}
