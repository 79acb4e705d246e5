package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a bordered section with its title drawn into the top border.
type Pane struct {
	Title  string
	Lines  []string
	Border lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
}

// Render draws the pane in exactly width x height cells. Content that does
// not fit is clipped.
func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	borderStyle := lipgloss.NewStyle().Foreground(p.Border)
	titleStyle := lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(p.Text)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-3), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)

	v := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", leftDash))+
		titleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮"))
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(p.Lines) {
			line = ansi.Truncate(p.Lines[i], contentWidth, "")
		}
		rows = append(rows, v+" "+textStyle.Render(padRightANSI(line, contentWidth))+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
