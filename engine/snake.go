package engine

// Snake owns the body segments (head first), heading and deferred growth
type Snake struct {
	body      []Position
	direction Direction
	growing   bool
}

// NewSnake creates a single-segment snake at origin
func NewSnake(origin Position, dir Direction) *Snake {
	s := &Snake{body: make([]Position, 0, 16)}
	s.Reset(origin, dir)
	return s
}

// newSnakeFromBody builds a snake with an explicit body, head first
func newSnakeFromBody(body []Position, dir Direction) *Snake {
	b := make([]Position, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir}
}

// Reset truncates the body to one segment at origin and sets the heading
func (s *Snake) Reset(origin Position, dir Direction) {
	s.body = append(s.body[:0], origin)
	s.direction = dir
	s.growing = false
}

// SetDirection changes the heading unless d reverses the current one
func (s *Snake) SetDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Grow queues one segment of growth for the next Advance
func (s *Snake) Grow() {
	s.growing = true
}

// Advance moves every segment into its predecessor's cell and steps the head
// Pending growth re-appends the vacated tail cell
func (s *Snake) Advance() {
	tail := s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = s.body[0].Step(s.direction)

	if s.growing {
		s.body = append(s.body, tail)
		s.growing = false
	}
}

// Contains reports whether pos is on any segment
func (s *Snake) Contains(pos Position) bool {
	for _, seg := range s.body {
		if seg == pos {
			return true
		}
	}
	return false
}

// SelfCollision reports whether the head overlaps any other segment
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

func (s *Snake) Head() Position {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) GrowthPending() bool {
	return s.growing
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []Position {
	b := make([]Position, len(s.body))
	copy(b, s.body)
	return b
}

// Each calls fn for every segment, head first, without copying
func (s *Snake) Each(fn func(i int, p Position)) {
	for i, p := range s.body {
		fn(i, p)
	}
}
