package render

import "github.com/gdamore/tcell/v2"

// ColorMode selects how the palette is expressed to the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
	ColorModeMono
)

// ParseColorMode maps a flag/env value to a ColorMode
// "auto" and unknown values are resolved from the terminal's color count
func ParseColorMode(s string, colors int) ColorMode {
	switch s {
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	case "mono", "none", "off":
		return ColorModeMono
	}

	switch {
	case colors >= 1<<24:
		return ColorModeTrueColor
	case colors >= 256:
		return ColorMode256
	default:
		return ColorModeMono
	}
}

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbSnakeBody  = tcell.NewRGBColor(0, 170, 0)     // Normal green
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbOverlayFg  = tcell.NewRGBColor(0, 0, 0)       // Dark text on banners
	RgbMenuFg     = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbMenuBg     = tcell.NewRGBColor(0, 0, 170)     // Blue
)

// Palette holds the resolved styles for every drawable element
type Palette struct {
	Default  tcell.Style
	Border   tcell.Style
	Head     tcell.Style
	Body     tcell.Style
	Food     tcell.Style
	Status   tcell.Style
	Paused   tcell.Style
	GameOver tcell.Style
	Selected tcell.Style
}

// NewPalette builds the styles for the given color mode
func NewPalette(mode ColorMode) Palette {
	switch mode {
	case ColorModeMono:
		def := tcell.StyleDefault
		return Palette{
			Default:  def,
			Border:   def,
			Head:     def.Bold(true),
			Body:     def,
			Food:     def.Bold(true),
			Status:   def,
			Paused:   def.Reverse(true),
			GameOver: def.Reverse(true).Bold(true),
			Selected: def.Reverse(true),
		}
	case ColorMode256:
		def := tcell.StyleDefault.Background(tcell.PaletteColor(234))
		return Palette{
			Default:  def,
			Border:   def.Foreground(tcell.PaletteColor(250)),
			Head:     def.Foreground(tcell.PaletteColor(83)).Bold(true),
			Body:     def.Foreground(tcell.PaletteColor(34)),
			Food:     def.Foreground(tcell.PaletteColor(203)).Bold(true),
			Status:   def.Foreground(tcell.PaletteColor(231)),
			Paused:   tcell.StyleDefault.Foreground(tcell.PaletteColor(16)).Background(tcell.PaletteColor(214)),
			GameOver: tcell.StyleDefault.Foreground(tcell.PaletteColor(231)).Background(tcell.PaletteColor(160)).Bold(true),
			Selected: tcell.StyleDefault.Foreground(tcell.PaletteColor(51)).Background(tcell.PaletteColor(19)),
		}
	default:
		def := tcell.StyleDefault.Background(RgbBackground)
		return Palette{
			Default:  def,
			Border:   def.Foreground(RgbBorder),
			Head:     def.Foreground(RgbSnakeHead).Bold(true),
			Body:     def.Foreground(RgbSnakeBody),
			Food:     def.Foreground(RgbFood).Bold(true),
			Status:   def.Foreground(RgbStatusText),
			Paused:   tcell.StyleDefault.Foreground(RgbOverlayFg).Background(RgbPausedBg),
			GameOver: tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbGameOverBg).Bold(true),
			Selected: tcell.StyleDefault.Foreground(RgbMenuFg).Background(RgbMenuBg),
		}
	}
}
