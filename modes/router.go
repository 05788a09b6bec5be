package modes

import (
	"log"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// Router dispatches input and rendering to the screen of the current application state
type Router struct {
	state   engine.AppState
	screens map[engine.AppState]Screen
	palette render.Palette
	ascii   bool
}

// NewRouter creates a router starting on the menu
func NewRouter(menu, info, game Screen, palette render.Palette, ascii bool) *Router {
	return &Router{
		state: engine.AppMenu,
		screens: map[engine.AppState]Screen{
			engine.AppMenu: menu,
			engine.AppInfo: info,
			engine.AppGame: game,
		},
		palette: palette,
		ascii:   ascii,
	}
}

func (r *Router) State() engine.AppState {
	return r.state
}

// HandleInput forwards a key to the active screen and applies the returned transition
func (r *Router) HandleInput(k engine.Key) {
	if k == engine.KeyNone {
		return
	}
	screen, ok := r.screens[r.state]
	if !ok {
		return
	}
	r.transition(screen.HandleInput(k))
}

func (r *Router) transition(next engine.AppState) {
	if next == r.state {
		return
	}
	log.Printf("router: %v -> %v", r.state, next)
	r.state = next

	if e, ok := r.screens[next].(enterer); ok {
		e.Enter()
	}
}

// Update advances time-driven state of the active screen
func (r *Router) Update() {
	if u, ok := r.screens[r.state].(updater); ok {
		u.Update()
	}
}

// Resize propagates the terminal size to every screen that tracks it
func (r *Router) Resize(width, height int) {
	for _, screen := range r.screens {
		if rs, ok := screen.(resizer); ok {
			rs.Resize(width, height)
		}
	}
}

// Render clears the surface, frames it and draws the active screen
func (r *Router) Render(s render.Surface) {
	screen, ok := r.screens[r.state]
	if !ok {
		return
	}
	s.Clear()
	render.Fill(s, r.palette.Default)
	render.DrawBorder(s, r.palette.Border, r.ascii)
	screen.Render(s)
}
