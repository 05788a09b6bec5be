package modes

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// InfoScreen shows key help and the session stats
type InfoScreen struct {
	palette render.Palette
	stats   func() engine.Stats
}

func NewInfoScreen(palette render.Palette, stats func() engine.Stats) *InfoScreen {
	return &InfoScreen{palette: palette, stats: stats}
}

func (i *InfoScreen) HandleInput(k engine.Key) engine.AppState {
	if k == engine.KeyQuit {
		return engine.AppMenu
	}
	return engine.AppInfo
}

func (i *InfoScreen) Render(s render.Surface) {
	_, height := s.Size()
	lines := len(constants.InfoLines) + 4
	y := height/2 - lines/2

	for _, line := range constants.InfoLines {
		render.DrawCentered(s, y, line, i.palette.Status)
		y++
	}
	y++

	st := i.stats()
	render.DrawCentered(s, y, fmt.Sprintf("games %d   best %d   last %d", st.GamesPlayed, st.BestScore, st.LastScore), i.palette.Status)
	y += 2

	render.DrawCentered(s, y, constants.TextInfoBack, i.palette.Selected)
}
