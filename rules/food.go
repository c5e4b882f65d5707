package rules

// MaxFoodAttempts caps how many random cells Respawn tries before giving up.
const MaxFoodAttempts = 1000

// FallbackFood is where food lands when every attempt hit an occupied cell.
// It may overlap the snake.
var FallbackFood = Point{X: 0, Y: 0}

// Rand is the source of randomness used for food placement. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Food is the single piece of food on the board along with the grid bounds
// it was last placed against.
type Food struct {
	Position Point
	Width    int
	Height   int
}

// GenerateFood picks a cell uniformly from a width x height grid. Both
// bounds must be at least 1.
func GenerateFood(rng Rand, width, height int) Point {
	return Point{
		X: rng.Intn(width),
		Y: rng.Intn(height),
	}
}

// NewFood places food on a random cell without checking occupancy.
func NewFood(rng Rand, width, height int) *Food {
	return &Food{
		Position: GenerateFood(rng, width, height),
		Width:    width,
		Height:   height,
	}
}

// Respawn moves the food to a random cell that is not in occupied. After
// MaxFoodAttempts misses it falls back to FallbackFood rather than looping
// forever on a full grid.
func (f *Food) Respawn(rng Rand, occupied []Point, width, height int) {
	f.Width = width
	f.Height = height

	taken := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for attempts := 0; attempts < MaxFoodAttempts; attempts++ {
		p := GenerateFood(rng, width, height)
		if _, ok := taken[p]; !ok {
			f.Position = p
			return
		}
	}
	f.Position = FallbackFood
}
