package modes

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// menuTargets is the state each menu option leads to, parallel to constants.MenuOptions
var menuTargets = []engine.AppState{engine.AppGame, engine.AppInfo, engine.AppExit}

// MenuScreen lists Start/Info/Exit with a wrapping cursor
type MenuScreen struct {
	palette  render.Palette
	selected int
}

func NewMenuScreen(palette render.Palette) *MenuScreen {
	return &MenuScreen{palette: palette}
}

// Selected returns the index of the highlighted option
func (m *MenuScreen) Selected() int {
	return m.selected
}

func (m *MenuScreen) HandleInput(k engine.Key) engine.AppState {
	n := len(constants.MenuOptions)
	switch k {
	case engine.KeyUp:
		m.selected = (m.selected + n - 1) % n
	case engine.KeyDown:
		m.selected = (m.selected + 1) % n
	case engine.KeyAccept:
		return menuTargets[m.selected]
	}
	return engine.AppMenu
}

func (m *MenuScreen) Render(s render.Surface) {
	_, height := s.Size()
	top := height/2 - len(constants.MenuOptions)/2

	for i, label := range constants.MenuOptions {
		style := m.palette.Status
		if i == m.selected {
			style = m.palette.Selected
			label = " " + label + " "
		}
		render.DrawCentered(s, top+i, label, style)
	}
}
