package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func testBase() string {
	rows := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, strings.Repeat(string(rune('a'+i)), 40))
	}
	return strings.Join(rows, "\n")
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	out := RenderPopup(testBase(), "Popup", 40, 12, PopupStyle(lipgloss.Color("#89b4fa")))
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("line count = %d, want 12", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if lines[0] != strings.Repeat("a", 40) {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if lines[11] != strings.Repeat("l", 40) {
		t.Fatalf("expected bottom base row preserved, got %q", lines[11])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestPopupRectCentersCard(t *testing.T) {
	r := PopupRect("ab\nabcd", 40, 12)
	want := Rect{X: (40 - 10) / 2, Y: (12 - 6) / 2, W: 4 + PopupChromeX, H: 2 + PopupChromeY}
	if r != want {
		t.Fatalf("rect = %+v, want %+v", r, want)
	}
	x, y := r.ContentOrigin()
	if x != r.X+3 || y != r.Y+2 {
		t.Fatalf("content origin = (%d,%d)", x, y)
	}
}

func TestPopupRectClampsToCanvas(t *testing.T) {
	r := PopupRect(strings.Repeat("x", 80), 20, 2)
	if r.X != 0 || r.Y != 0 {
		t.Fatalf("oversized popup should clamp to origin, got %+v", r)
	}
}

func TestPopupContentLandsAtContentOrigin(t *testing.T) {
	popup := "XY\nZW"
	out := RenderPopup(testBase(), popup, 40, 12, PopupStyle(lipgloss.Color("#89b4fa")))
	r := PopupRect(popup, 40, 12)
	x, y := r.ContentOrigin()
	lines := strings.Split(out, "\n")
	got := ansi.Strip(lines[y])
	idx := strings.Index(got, "XY")
	if idx < 0 || ansi.StringWidth(got[:idx]) != x {
		t.Fatalf("row %d = %q, expected XY at column %d", y, got, x)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
