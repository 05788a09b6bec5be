package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// CoordinateGenerator samples uniformly random play area positions
type CoordinateGenerator struct {
	rng *rand.Rand
}

// NewCoordinateGenerator creates a generator seeded from the process clock
func NewCoordinateGenerator() *CoordinateGenerator {
	return NewSeededCoordinateGenerator(uint64(time.Now().UnixNano()))
}

// NewSeededCoordinateGenerator creates a generator with a fixed seed (deterministic sequences for tests)
func NewSeededCoordinateGenerator(seed uint64) *CoordinateGenerator {
	return &CoordinateGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a position with 1 <= x < width and 1 <= y < height
// Axes are sampled independently; degenerate areas collapse to (1,1)
func (g *CoordinateGenerator) Generate(width, height int) Position {
	return Position{
		X: g.axis(width),
		Y: g.axis(height),
	}
}

func (g *CoordinateGenerator) axis(limit int) int {
	if limit <= 2 {
		return 1
	}
	return 1 + g.rng.Intn(limit-1)
}
