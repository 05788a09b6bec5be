package modes

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// Screen is one page of the application: menu, info or game
type Screen interface {
	Render(s render.Surface)
	HandleInput(k engine.Key) engine.AppState
}

// enterer is implemented by screens that reset when they become active
type enterer interface {
	Enter()
}

// updater is implemented by screens with time-driven state
type updater interface {
	Update()
}

// resizer is implemented by screens that track the terminal size
type resizer interface {
	Resize(width, height int)
}
