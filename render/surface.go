package render

import "github.com/gdamore/tcell/v2"

// Surface is the character grid the screens draw on
// tcell.Screen satisfies it, as does the simulation screen used in tests
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}
