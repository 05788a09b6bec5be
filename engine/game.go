package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// maxFoodAttempts bounds random food sampling before falling back to a scan
const maxFoodAttempts = 4096

// Game owns one snake session: snake, food, score, speed and state
type Game struct {
	snake *Snake
	food  Position
	gen   *CoordinateGenerator
	clock TimeProvider

	// Play area bounds, valid cells are [1, width-1] x [1, height-1]
	width, height int

	state    GameState
	score    int
	interval time.Duration
	lastTick time.Time

	stats Stats
}

// NewGame creates a running session on a width x height area
func NewGame(width, height int, gen *CoordinateGenerator, clock TimeProvider) *Game {
	g := &Game{
		snake:  NewSnake(Origin(), DirRight),
		gen:    gen,
		clock:  clock,
		width:  width,
		height: height,
	}
	g.Start()
	return g
}

// Origin is the fixed spawn cell of the snake head
func Origin() Position {
	return Position{X: constants.OriginX, Y: constants.OriginY}
}

// Start resets the session and enters Running
func (g *Game) Start() {
	g.reset()
	g.state = StateRunning
	log.Printf("game: session start on %dx%d, food at %v", g.width, g.height, g.food)
}

// Restart resets the session after a game over and waits paused for the player
func (g *Game) Restart() {
	g.reset()
	g.state = StatePaused
	log.Printf("game: restart, food at %v", g.food)
}

func (g *Game) reset() {
	g.snake.Reset(Origin(), DirRight)
	g.score = 0
	g.interval = constants.InitialTickInterval
	g.lastTick = g.clock.Now()
	g.placeFood()
}

// HandleInput applies a key immediately, independent of the tick gate
// Returns AppMenu on quit, AppGame otherwise
func (g *Game) HandleInput(k Key) AppState {
	switch k {
	case KeyQuit:
		log.Printf("game: quit to menu from %v, score %d", g.state, g.score)
		return AppMenu
	case KeyPause:
		g.TogglePause()
	case KeyRestart:
		if g.state == StateGameOver {
			g.Restart()
		}
	default:
		if d, ok := k.Direction(); ok && g.state != StateGameOver {
			g.snake.SetDirection(d)
		}
	}
	return AppGame
}

// TogglePause switches between Running and Paused, other states are untouched
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
		// Time spent paused does not count toward the next tick
		g.lastTick = g.clock.Now()
	}
}

// Update runs one simulation step if Running and the tick interval elapsed
// Returns true when a step was taken
func (g *Game) Update() bool {
	if g.state != StateRunning {
		return false
	}
	now := g.clock.Now()
	if now.Sub(g.lastTick) < g.interval {
		return false
	}
	g.lastTick = now
	g.step()
	return true
}

// step advances the simulation by exactly one tick
func (g *Game) step() {
	g.snake.Advance()

	if g.snake.Head() == g.food {
		g.score++
		g.interval -= constants.TickDecrement
		if g.interval < constants.MinTickInterval {
			g.interval = constants.MinTickInterval
		}
		g.snake.Grow()
		g.placeFood()
		log.Printf("game: food eaten, score %d, interval %v", g.score, g.interval)
	}

	switch {
	case !g.InBounds(g.snake.Head()):
		g.gameOver("wall")
	case g.snake.SelfCollision():
		g.gameOver("self")
	}
}

func (g *Game) gameOver(cause string) {
	g.state = StateGameOver
	g.stats.record(g.score)
	log.Printf("game: over (%s) at %v, score %d, length %d", cause, g.snake.Head(), g.score, g.snake.Len())
}

// InBounds reports whether pos lies strictly inside the border
func (g *Game) InBounds(pos Position) bool {
	return pos.X >= 1 && pos.X <= g.width-1 && pos.Y >= 1 && pos.Y <= g.height-1
}

// placeFood regenerates food on a cell not occupied by the snake
func (g *Game) placeFood() {
	for range maxFoodAttempts {
		p := g.gen.Generate(g.width, g.height)
		if !g.snake.Contains(p) {
			g.food = p
			return
		}
	}

	// Random sampling exhausted, take the first free cell
	for y := 1; y < g.height; y++ {
		for x := 1; x < g.width; x++ {
			p := Position{X: x, Y: y}
			if !g.snake.Contains(p) {
				g.food = p
				return
			}
		}
	}
	log.Printf("game: no free cell for food on %dx%d", g.width, g.height)
}

// Resize updates the play area bounds, the snake is left in place
func (g *Game) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	if !g.InBounds(g.food) {
		g.placeFood()
	}
	log.Printf("game: resized to %dx%d", width, height)
}

func (g *Game) Snake() *Snake           { return g.snake }
func (g *Game) Food() Position          { return g.food }
func (g *Game) Score() int              { return g.score }
func (g *Game) State() GameState        { return g.state }
func (g *Game) Interval() time.Duration { return g.interval }
func (g *Game) Stats() Stats            { return g.stats }

// Size returns the play area bounds
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}
