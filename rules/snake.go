package rules

// Snake is the player's snake. Body is ordered head first.
type Snake struct {
	body          []Point
	direction     Direction
	nextDirection Direction
	growPending   int
}

// NewSnake returns a snake already reset for a width x height grid.
func NewSnake(width, height int) *Snake {
	s := &Snake{}
	s.Reset(width, height)
	return s
}

// Reset lays the snake out as three horizontal cells starting at
// (width/4, height/2), heading right, with no growth pending.
func (s *Snake) Reset(width, height int) {
	x, y := width/4, height/2
	s.body = []Point{
		{X: x, Y: y},
		{X: x - 1, Y: y},
		{X: x - 2, Y: y},
	}
	s.direction = Right
	s.nextDirection = Right
	s.growPending = 0
}

// ChangeDirection buffers d for the next Update. A request for the opposite
// of the current direction is dropped, and false is returned.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.nextDirection = d
	return true
}

// Update advances the snake one cell. The new head is inserted before growth
// is evaluated, so a pending growth unit keeps the tail in place.
func (s *Snake) Update() {
	s.direction = s.nextDirection
	head := s.Head().Move(s.direction)
	s.body = append([]Point{head}, s.body...)

	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow schedules amount cells of growth, consumed one per Update.
func (s *Snake) Grow(amount int) {
	s.growPending += amount
}

// CheckCollision reports whether the head left the grid or ran into the
// rest of the body. Only meaningful right after Update.
func (s *Snake) CheckCollision(width, height int) bool {
	return s.CollisionCause(width, height) != ""
}

// CollisionCause returns which collision rule the head currently breaks, or
// an empty string.
func (s *Snake) CollisionCause(width, height int) string {
	head := s.Head()
	if deathByOutOfBounds(head, width, height) {
		return DeathCauseWallCollision
	}
	for _, b := range s.body[1:] {
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	body := make([]Point, len(s.body))
	copy(body, s.body)
	return body
}

// Contains reports whether p is one of the body cells.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Len returns the number of body cells.
func (s *Snake) Len() int { return len(s.body) }

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction { return s.direction }

// NextDirection returns the direction the next Update will move in.
func (s *Snake) NextDirection() Direction { return s.nextDirection }

// GrowPending returns how many more cells the snake still has to grow.
func (s *Snake) GrowPending() int { return s.growPending }
