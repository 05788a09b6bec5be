package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
)

// DrawText writes text starting at (x, y), advancing by each rune's display width
// Returns the column after the last written cell; text past the right edge is clipped
func DrawText(s Surface, x, y int, text string, style tcell.Style) int {
	width, height := s.Size()
	if y < 0 || y >= height {
		return x
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x += w
	}
	return x
}

// DrawCentered writes text horizontally centered on row y
func DrawCentered(s Surface, y int, text string, style tcell.Style) {
	width, _ := s.Size()
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(s, x, y, text, style)
}

// DrawBorder frames the full surface with a one-cell box
func DrawBorder(s Surface, style tcell.Style, ascii bool) {
	width, height := s.Size()
	if width < 2 || height < 2 {
		return
	}

	h, v := tcell.RuneHLine, tcell.RuneVLine
	ul, ur, ll, lr := tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner
	if ascii {
		h, v = constants.GlyphBorderHorizontalASCII, constants.GlyphBorderVerticalASCII
		ul, ur, ll, lr = constants.GlyphBorderCornerASCII, constants.GlyphBorderCornerASCII,
			constants.GlyphBorderCornerASCII, constants.GlyphBorderCornerASCII
	}

	for x := 1; x < width-1; x++ {
		s.SetContent(x, 0, h, nil, style)
		s.SetContent(x, height-1, h, nil, style)
	}
	for y := 1; y < height-1; y++ {
		s.SetContent(0, y, v, nil, style)
		s.SetContent(width-1, y, v, nil, style)
	}
	s.SetContent(0, 0, ul, nil, style)
	s.SetContent(width-1, 0, ur, nil, style)
	s.SetContent(0, height-1, ll, nil, style)
	s.SetContent(width-1, height-1, lr, nil, style)
}

// Fill paints every cell of the surface with a blank in style
func Fill(s Surface, style tcell.Style) {
	width, height := s.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
