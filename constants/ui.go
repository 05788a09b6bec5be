package constants

// Glyphs drawn on the play area
const (
	GlyphSnakeHead = '@'
	GlyphSnakeBody = 'o'
	GlyphFood      = '*'

	// ASCII border used when box drawing is disabled
	GlyphBorderHorizontalASCII = '-'
	GlyphBorderVerticalASCII   = '|'
	GlyphBorderCornerASCII     = '+'
)

// Menu option labels, in display order
var MenuOptions = []string{"Start", "Info", "Exit"}

// UI text
const (
	TextInfoBack   = "press q to go back to the menu"
	TextPaused     = " PAUSED - p to resume "
	TextGameOver   = " GAME OVER - r to restart, q for menu "
	TextScoreLabel = " Score: "
	TextSpeedLabel = " Tick: "
)

// InfoLines is the key help shown on the info screen
var InfoLines = []string{
	"arrows / wasd / hjkl  steer",
	"p / space            pause",
	"r                    restart after game over",
	"q / esc              back to menu",
	"ctrl-c               quit",
}
