package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// TranslateKey maps a terminal key event onto the game's key vocabulary
func TranslateKey(ev *tcell.EventKey) engine.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.KeyUp
	case tcell.KeyDown:
		return engine.KeyDown
	case tcell.KeyLeft:
		return engine.KeyLeft
	case tcell.KeyRight:
		return engine.KeyRight
	case tcell.KeyEnter:
		return engine.KeyAccept
	case tcell.KeyEscape:
		return engine.KeyQuit
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return engine.KeyUnknown
}

func translateRune(r rune) engine.Key {
	switch unicode.ToLower(r) {
	case 'w', 'k':
		return engine.KeyUp
	case 's', 'j':
		return engine.KeyDown
	case 'a', 'h':
		return engine.KeyLeft
	case 'd', 'l':
		return engine.KeyRight
	case 'p', ' ':
		return engine.KeyPause
	case 'r':
		return engine.KeyRestart
	case 'q':
		return engine.KeyQuit
	}
	return engine.KeyUnknown
}

// InputHandler processes terminal events for the router
type InputHandler struct {
	router *Router
}

// NewInputHandler creates a new input handler
func NewInputHandler(router *Router) *InputHandler {
	return &InputHandler{router: router}
}

// HandleEvent processes a tcell event and returns false if the application should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		h.router.HandleInput(TranslateKey(ev))
	case *tcell.EventResize:
		width, height := ev.Size()
		h.router.Resize(width, height)
	}
	return h.router.State() != engine.AppExit
}
