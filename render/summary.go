package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	summaryTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	summaryBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Summary renders the session results printed after the terminal is restored
// Returns an empty string when no game finished
func Summary(played, best, last int) string {
	if played == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(summaryBorder).
		Headers("games", "best", "last").
		Row(strconv.Itoa(played), strconv.Itoa(best), strconv.Itoa(last))

	return lipgloss.JoinVertical(lipgloss.Left,
		summaryTitle.Render("snake session"),
		t.String(),
	)
}
