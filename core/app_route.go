package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/watchdash/core/widgets"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case OpenProviderPickerMsg:
		return m, m.openProviderPicker()
	case ProvidersChangedMsg:
		m.refreshProviderCount()
		m.checkProvidersDir(msg.Err)
		if m.WatchProviders != nil {
			return m, m.WatchProviders()
		}
		return m, nil
	case ProviderResolvedMsg:
		m.applyResult(msg.Result)
		if m.exitOnResolve {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m.routeToScreen(msg)
		}
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-provider-picker", scope) {
			return m, m.openProviderPicker()
		}
		return m, nil
	case tea.MouseMsg:
		if m.screens.Top() == nil {
			return m, nil
		}
		translated, ok := m.translateMouse(msg)
		if !ok {
			return m, nil
		}
		return m.routeToScreen(translated)
	}

	if m.screens.Top() != nil {
		return m.routeToScreen(msg)
	}
	return m, nil
}

func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	if next != nil {
		m.screens.ReplaceTop(next)
	}
	return m, cmd
}

func (m *Model) openProviderPicker() tea.Cmd {
	if m.OpenProviderPicker == nil {
		return nil
	}
	return m.PushScreen(m.OpenProviderPicker(m))
}

// translateMouse maps a terminal mouse event onto the top screen's popup.
// Events outside the body region belong to the dashboard chrome and are
// dropped.
func (m Model) translateMouse(msg tea.MouseMsg) (ScreenMouseMsg, bool) {
	top := m.screens.Top()
	bodyTop, bodyW, bodyH := m.bodyRegion()
	y := msg.Y - bodyTop
	if bodyH <= 0 || y < 0 || y >= bodyH || msg.X < 0 || msg.X >= bodyW {
		return ScreenMouseMsg{}, false
	}
	rect := widgets.PopupRect(top.View(bodyW, bodyH), bodyW, bodyH)
	originX, originY := rect.ContentOrigin()
	return ScreenMouseMsg{
		X:       msg.X - originX,
		Y:       y - originY,
		InPanel: rect.Contains(msg.X, y),
		Button:  msg.Button,
		Action:  msg.Action,
	}, true
}
