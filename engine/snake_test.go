package engine

import "testing"

// TestSetDirectionIgnoresReverse checks every (current, requested) heading pair
func TestSetDirectionIgnoresReverse(t *testing.T) {
	dirs := []Direction{DirUp, DirRight, DirDown, DirLeft}
	for _, current := range dirs {
		for _, requested := range dirs {
			s := NewSnake(Position{X: 5, Y: 5}, current)
			s.SetDirection(requested)

			want := requested
			if requested == current.Opposite() {
				want = current
			}
			if s.Direction() != want {
				t.Errorf("current %v, requested %v: expected %v, got %v", current, requested, want, s.Direction())
			}
		}
	}
}

func TestSetDirectionRightThenLeft(t *testing.T) {
	s := NewSnake(Position{X: 1, Y: 1}, DirRight)
	s.SetDirection(DirLeft)
	if s.Direction() != DirRight {
		t.Errorf("Expected direction to remain right, got %v", s.Direction())
	}
}

func TestAdvanceSingleSegment(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3}, DirDown)
	s.Advance()

	if s.Len() != 1 {
		t.Fatalf("Expected length 1, got %d", s.Len())
	}
	if want := (Position{X: 3, Y: 4}); s.Head() != want {
		t.Errorf("Expected head %v, got %v", want, s.Head())
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	s := newSnakeFromBody([]Position{{5, 5}, {4, 5}, {3, 5}}, DirRight)
	s.Advance()

	want := []Position{{6, 5}, {5, 5}, {4, 5}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("Expected length %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestAdvanceGrowth verifies length grows by exactly one on the advance after Grow
func TestAdvanceGrowth(t *testing.T) {
	s := newSnakeFromBody([]Position{{5, 5}, {4, 5}, {3, 5}}, DirRight)

	s.Advance()
	if s.Len() != 3 {
		t.Errorf("Expected length preserved at 3, got %d", s.Len())
	}

	s.Grow()
	if !s.GrowthPending() {
		t.Fatal("Expected growth pending after Grow")
	}
	if s.Len() != 3 {
		t.Errorf("Grow must not change length before Advance, got %d", s.Len())
	}

	s.Advance()
	if s.Len() != 4 {
		t.Errorf("Expected length 4 after growth advance, got %d", s.Len())
	}
	if s.GrowthPending() {
		t.Error("Expected growth flag cleared after Advance")
	}
	if tail := s.Body()[3]; tail != (Position{4, 5}) {
		t.Errorf("Expected vacated tail (4,5) re-appended, got %v", tail)
	}

	s.Advance()
	if s.Len() != 4 {
		t.Errorf("Expected length to stay 4, got %d", s.Len())
	}
}

// TestAdvanceKeepsSegmentsAdjacent walks a turning, growing snake and checks unit spacing
func TestAdvanceKeepsSegmentsAdjacent(t *testing.T) {
	s := NewSnake(Position{X: 10, Y: 10}, DirRight)
	turns := []Direction{DirRight, DirDown, DirDown, DirLeft, DirLeft, DirUp, DirRight, DirUp}

	for i, d := range turns {
		s.SetDirection(d)
		if i%2 == 0 {
			s.Grow()
		}
		s.Advance()

		body := s.Body()
		for j := 1; j < len(body); j++ {
			dx := body[j].X - body[j-1].X
			dy := body[j].Y - body[j-1].Y
			if dx*dx+dy*dy != 1 {
				t.Fatalf("step %d: segments %d and %d not adjacent: %v %v", i, j-1, j, body[j-1], body[j])
			}
		}
	}
}

func TestContains(t *testing.T) {
	s := newSnakeFromBody([]Position{{5, 5}, {4, 5}, {3, 5}}, DirRight)

	for _, p := range []Position{{5, 5}, {4, 5}, {3, 5}} {
		if !s.Contains(p) {
			t.Errorf("Expected snake to contain %v", p)
		}
	}
	for _, p := range []Position{{6, 5}, {2, 5}, {4, 4}} {
		if s.Contains(p) {
			t.Errorf("Expected snake not to contain %v", p)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	// Head turns down into the loop formed by its own body
	s := newSnakeFromBody([]Position{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}, DirDown)
	if s.SelfCollision() {
		t.Fatal("Expected no collision before advance")
	}

	s.Advance()
	if !s.SelfCollision() {
		t.Errorf("Expected self collision with head at %v, body %v", s.Head(), s.Body())
	}
}

func TestSelfCollisionTailChase(t *testing.T) {
	// Head moves into the cell the tail vacates on the same advance
	s := newSnakeFromBody([]Position{{5, 5}, {6, 5}, {6, 6}, {5, 6}}, DirDown)
	s.Advance()
	if s.SelfCollision() {
		t.Errorf("Expected no collision when following the tail, body %v", s.Body())
	}
}

func TestReset(t *testing.T) {
	s := newSnakeFromBody([]Position{{5, 5}, {4, 5}, {3, 5}}, DirUp)
	s.Grow()

	origin := Position{X: 1, Y: 1}
	s.Reset(origin, DirRight)

	if s.Len() != 1 {
		t.Errorf("Expected length 1 after reset, got %d", s.Len())
	}
	if s.Head() != origin {
		t.Errorf("Expected head at %v, got %v", origin, s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("Expected direction right, got %v", s.Direction())
	}
	if s.GrowthPending() {
		t.Error("Expected pending growth cleared by reset")
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	s := newSnakeFromBody([]Position{{5, 5}, {4, 5}}, DirRight)
	b := s.Body()
	b[0] = Position{X: 99, Y: 99}

	if s.Head() != (Position{5, 5}) {
		t.Errorf("Mutating Body() result changed the snake: head %v", s.Head())
	}
}
