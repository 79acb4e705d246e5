package core

import tea "github.com/charmbracelet/bubbletea"

// OpenProviderPickerMsg asks the dashboard to open the provider picker.
type OpenProviderPickerMsg struct{}

// ProvidersChangedMsg reports that the providers directory changed on disk.
// Err is set when the watcher itself failed.
type ProvidersChangedMsg struct {
	Dir string
	Err error
}

// ProviderResolvedMsg carries the outcome of a provider picker back to the
// dashboard.
type ProviderResolvedMsg struct {
	Result ProviderResult
}

// ScreenMouseMsg is a mouse event translated for the top screen. X and Y are
// relative to the popup content origin and may be negative. InPanel reports
// whether the event landed on the popup card rather than the backdrop.
type ScreenMouseMsg struct {
	X, Y    int
	InPanel bool
	Button  tea.MouseButton
	Action  tea.MouseAction
}

// IsLeftClick reports a left button press.
func (m ScreenMouseMsg) IsLeftClick() bool {
	return m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft
}
