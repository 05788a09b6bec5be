package modes

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// GameScreen draws a game session and forwards input to it
type GameScreen struct {
	game    *engine.Game
	palette render.Palette
}

func NewGameScreen(game *engine.Game, palette render.Palette) *GameScreen {
	return &GameScreen{game: game, palette: palette}
}

// Enter starts a fresh session when arriving from the menu
func (g *GameScreen) Enter() {
	g.game.Start()
}

func (g *GameScreen) Update() {
	g.game.Update()
}

// Resize maps terminal size to play area bounds, the border sits on column 0 and width-1
func (g *GameScreen) Resize(width, height int) {
	g.game.Resize(width-1, height-1)
}

func (g *GameScreen) HandleInput(k engine.Key) engine.AppState {
	return g.game.HandleInput(k)
}

func (g *GameScreen) Render(s render.Surface) {
	food := g.game.Food()
	s.SetContent(food.X, food.Y, constants.GlyphFood, nil, g.palette.Food)

	// Body first so the head wins on overlap
	snake := g.game.Snake()
	snake.Each(func(i int, p engine.Position) {
		if i > 0 {
			s.SetContent(p.X, p.Y, constants.GlyphSnakeBody, nil, g.palette.Body)
		}
	})
	head := snake.Head()
	s.SetContent(head.X, head.Y, constants.GlyphSnakeHead, nil, g.palette.Head)

	g.renderStatus(s)

	_, height := s.Size()
	switch g.game.State() {
	case engine.StatePaused:
		render.DrawCentered(s, height/2, constants.TextPaused, g.palette.Paused)
	case engine.StateGameOver:
		render.DrawCentered(s, height/2, constants.TextGameOver, g.palette.GameOver)
	}
}

// renderStatus overlays score and tick interval on the top border
func (g *GameScreen) renderStatus(s render.Surface) {
	x := render.DrawText(s, 2, 0, fmt.Sprintf("%s%d ", constants.TextScoreLabel, g.game.Score()), g.palette.Status)
	render.DrawText(s, x+1, 0, fmt.Sprintf("%s%dms ", constants.TextSpeedLabel, g.game.Interval().Milliseconds()), g.palette.Status)
}
