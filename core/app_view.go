package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/watchdash/core/widgets"
)

// Header, status and footer are one row each.
const chromeRows = 3

func (m Model) bodyRegion() (top, width, height int) {
	return 2, max(1, m.width), max(0, m.height-chromeRows)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	_, bodyW, bodyH := m.bodyRegion()
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	body := ""
	if bodyH > 0 {
		body = m.renderBody(bodyW, bodyH)
		if top := m.screens.Top(); top != nil {
			body = widgets.RenderPopup(body, top.View(bodyW, bodyH), bodyW, bodyH, widgets.PopupStyle(colorAccent))
		}
	}
	body = fitHeight(body, bodyH)

	parts := []string{header, status}
	if bodyH > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderBody(width, height int) string {
	current := noValueStyle.Render("none")
	if m.current != "" {
		current = valueStyle.Render(m.currentLabel) + labelStyle.Render(" ("+m.current+")")
	}
	lines := []string{
		labelStyle.Render("Providers dir: ") + m.providersDir,
		labelStyle.Render("Available:     ") + fmt.Sprintf("%d", m.providerCount),
		labelStyle.Render("Deploy with:   ") + current,
		"",
		labelStyle.Render("Recent:"),
	}
	if len(m.recent) == 0 {
		lines = append(lines, noValueStyle.Render("  nothing yet"))
	}
	for _, r := range m.recent {
		lines = append(lines, "  "+r)
	}
	pane := widgets.Pane{Title: "Deploy", Lines: lines, Border: colorBorder, Text: colorText}
	return pane.Render(width, height)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("watchdash")
	right := headerDirStyle.Render(m.providersDir + " ")
	right = ansi.Truncate(right, max(1, m.width-ansi.StringWidth(left)-1), "")
	gap := max(1, m.width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
