package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Popup card chrome: a one-cell border plus padding around the content.
const (
	PopupBorder = 1
	PopupPadX   = 2
	PopupPadY   = 1

	PopupChromeX = 2 * (PopupBorder + PopupPadX)
	PopupChromeY = 2 * (PopupBorder + PopupPadY)
)

// Rect is a cell rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContentOrigin returns the top-left cell of the popup content inside the card.
func (r Rect) ContentOrigin() (int, int) {
	return r.X + PopupBorder + PopupPadX, r.Y + PopupBorder + PopupPadY
}

// PopupStyle draws the card around popup content.
func PopupStyle(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(PopupPadY, PopupPadX)
}

// PopupRect returns where RenderPopup places the card for popup inside a
// width x height canvas.
func PopupRect(popup string, width, height int) Rect {
	lines := splitToLines(popup, 0)
	w := maxLineWidth(lines) + PopupChromeX
	h := len(lines) + PopupChromeY
	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	y := (height - h) / 2
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// RenderPopup draws popup as a centered card over base.
func RenderPopup(base, popup string, width, height int, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	rect := PopupRect(popup, width, height)
	card := style.Render(padBlock(popup, rect.W-PopupChromeX))
	if ansi.StringWidth(card) == 0 {
		return baseCanvas
	}
	return overlayAt(baseCanvas, card, rect.X, rect.Y, width, height)
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if pos < width {
			right = dropColumns(target, pos)
		}
		baseLines[row] = ansi.Truncate(left+overlayLine+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func padBlock(s string, width int) string {
	lines := splitToLines(s, 0)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
