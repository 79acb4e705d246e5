package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jask/watchdash/core"
	"github.com/jask/watchdash/core/widgets"
)

const (
	providerPickerTitle = "Select a Deploy Provider"
	cancelLabel         = "[ Cancel ]"
)

type pickerEvent int

const (
	eventItemActivated pickerEvent = iota
	eventCancelPressed
	eventCancelKey
	eventBackdropClicked
)

type pickerFocus int

const (
	focusNone pickerFocus = iota
	focusList
	focusCancel
)

type focusable interface {
	Focus() error
}

// pickerLayout records where the last View put each control, in content
// coordinates, so mouse events can be hit-tested.
type pickerLayout struct {
	width     int
	listTop   int
	listRows  int
	offset    int
	buttonRow int
	buttonX0  int
	buttonX1  int
}

// ProviderPicker is a modal that resolves to the identifier of one provider
// from a providers directory, or to a cancellation.
type ProviderPicker struct {
	id          string
	dir         string
	keys        *core.KeyRegistry
	size        core.DialogSize
	theme       core.Theme
	list        *core.Picker
	focus       pickerFocus
	focusTarget focusable
	handlers    map[pickerEvent]func(id string) tea.Cmd
	onResolved  func(core.ProviderResult) tea.Msg
	closed      bool
	result      core.ProviderResult
	layout      pickerLayout
}

// NewProviderPicker enumerates dir through catalog once and builds the modal.
// onResolved turns the outcome into the message delivered to the opener; nil
// means core.ProviderResolvedMsg.
func NewProviderPicker(dir string, catalog core.ProviderCatalog, keys *core.KeyRegistry, onResolved func(core.ProviderResult) tea.Msg) *ProviderPicker {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if onResolved == nil {
		onResolved = func(r core.ProviderResult) tea.Msg { return core.ProviderResolvedMsg{Result: r} }
	}
	s := &ProviderPicker{
		id:         uuid.NewString(),
		dir:        dir,
		keys:       keys,
		size:       core.DefaultDialogSize(),
		theme:      core.DefaultTheme(),
		onResolved: onResolved,
	}

	var ids []string
	if catalog != nil {
		ids = catalog.List(dir)
	}
	if len(ids) > 0 {
		items := make([]core.PickerItem, 0, len(ids))
		for _, id := range ids {
			label := catalog.DisplayName(id, dir)
			items = append(items, core.PickerItem{ID: id, Label: label, Search: label + " " + id})
		}
		s.list = core.NewPicker(items)
		s.focusTarget = s.list
	}

	s.handlers = map[pickerEvent]func(id string) tea.Cmd{
		eventItemActivated: func(id string) tea.Cmd {
			return s.resolve(core.ProviderSelected{ID: id})
		},
		eventCancelPressed: func(string) tea.Cmd {
			return s.resolve(core.ProviderCancelled{})
		},
		eventCancelKey: func(string) tea.Cmd {
			return s.resolve(core.ProviderCancelled{})
		},
		eventBackdropClicked: func(string) tea.Cmd {
			return s.resolve(core.ProviderCancelled{})
		},
	}

	log.Debug().Str("modal", s.id).Str("dir", dir).Int("providers", len(ids)).Msg("provider picker opened")
	return s
}

// WithSize overrides the dialog bounds.
func (s *ProviderPicker) WithSize(size core.DialogSize) *ProviderPicker {
	s.size = size
	return s
}

func (s *ProviderPicker) Title() string { return providerPickerTitle }
func (s *ProviderPicker) Scope() string { return core.ScopeProviderPicker }

// Result returns the outcome once the picker has closed.
func (s *ProviderPicker) Result() (core.ProviderResult, bool) {
	return s.result, s.closed
}

// Mount focuses the provider list so keyboard navigation works at once.
func (s *ProviderPicker) Mount() tea.Cmd {
	if tryFocus(s.focusTarget) {
		s.focus = focusList
	}
	return nil
}

// tryFocus is best effort. A missing target or a Focus error leaves focus
// unchanged and is not reported.
func tryFocus(target focusable) bool {
	if target == nil {
		return false
	}
	return target.Focus() == nil
}

func (s *ProviderPicker) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if s.closed {
		return s, nil, false
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = s.handleKey(msg)
	case core.ScreenMouseMsg:
		cmd = s.handleMouse(msg)
	}
	return s, cmd, s.closed
}

func (s *ProviderPicker) dispatch(ev pickerEvent, id string) tea.Cmd {
	if s.closed {
		return nil
	}
	handler, ok := s.handlers[ev]
	if !ok {
		return nil
	}
	return handler(id)
}

func (s *ProviderPicker) resolve(r core.ProviderResult) tea.Cmd {
	if s.closed {
		return nil
	}
	s.closed = true
	s.result = r
	if s.list != nil {
		s.list.Blur()
	}
	ev := log.Debug().Str("modal", s.id)
	if sel, ok := r.(core.ProviderSelected); ok {
		ev = ev.Str("provider", sel.ID)
	}
	ev.Bool("cancelled", !isSelected(r)).Msg("provider picker resolved")

	onResolved := s.onResolved
	return func() tea.Msg { return onResolved(r) }
}

func (s *ProviderPicker) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, _ := s.keys.ActionFor(msg, s.Scope())
	switch action {
	case "close":
		return s.dispatch(eventCancelKey, "")
	case "focus-next":
		s.cycleFocus()
		return nil
	}

	switch s.focus {
	case focusCancel:
		if action == "select" || msg.Type == tea.KeySpace {
			return s.dispatch(eventCancelPressed, "")
		}
	case focusList:
		if res := s.list.HandleKey(listKey(action, msg)); res.Action == core.PickerActionSelected {
			return s.dispatch(eventItemActivated, res.Item.ID)
		}
	}
	return nil
}

// listKey maps a bound picker action onto the key names core.Picker handles.
// Unbound keys pass through as filter input; a bare enter whose select
// binding moved elsewhere maps to nothing.
func listKey(action string, msg tea.KeyMsg) string {
	switch action {
	case "list-up":
		return "up"
	case "list-down":
		return "down"
	case "select":
		return "enter"
	}
	if msg.Type == tea.KeyEnter {
		return ""
	}
	return msg.String()
}

func (s *ProviderPicker) cycleFocus() {
	switch s.focus {
	case focusList:
		s.list.Blur()
		s.focus = focusCancel
	case focusCancel:
		if tryFocus(s.focusTarget) {
			s.focus = focusList
		}
	default:
		if tryFocus(s.focusTarget) {
			s.focus = focusList
		} else {
			s.focus = focusCancel
		}
	}
}

func (s *ProviderPicker) handleMouse(msg core.ScreenMouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.InPanel && s.list != nil {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.list.CursorUp()
			return nil
		case tea.MouseButtonWheelDown:
			s.list.CursorDown()
			return nil
		}
	}
	if !msg.IsLeftClick() {
		return nil
	}
	if !msg.InPanel {
		return s.dispatch(eventBackdropClicked, "")
	}

	l := s.layout
	if msg.X < 0 || msg.X >= l.width {
		return nil
	}
	if s.list != nil && msg.Y >= l.listTop && msg.Y < l.listTop+l.listRows {
		idx := l.offset + msg.Y - l.listTop
		item, ok := s.list.ItemAt(idx)
		if !ok {
			return nil
		}
		s.list.SetCursor(idx)
		return s.dispatch(eventItemActivated, item.ID)
	}
	if msg.Y == l.buttonRow && msg.X >= l.buttonX0 && msg.X < l.buttonX1 {
		return s.dispatch(eventCancelPressed, "")
	}
	return nil
}

// View renders the dialog content for a body of width x height cells. The
// host draws the card border around it.
func (s *ProviderPicker) View(width, height int) string {
	panelW, panelH := s.size.Panel(width, height)
	cw := max(1, panelW-widgets.PopupChromeX)
	maxRows := max(1, panelH-widgets.PopupChromeY)
	t := s.theme

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Width(cw).Align(lipgloss.Center)
	mutedStyle := lipgloss.NewStyle().Foreground(t.Muted)

	lines := []string{titleStyle.Render(ansi.Truncate(providerPickerTitle, cw, "…")), ""}
	layout := pickerLayout{width: cw}

	if s.list == nil {
		lines = append(lines, ansi.Truncate("No providers found in:", cw, "…"))
		dir := lipgloss.NewStyle().Width(cw).Foreground(t.Muted).Render(s.dir)
		lines = append(lines, strings.Split(dir, "\n")...)
	} else {
		filter := mutedStyle.Render("(type to filter)")
		if q := s.list.Query(); q != "" {
			filter = lipgloss.NewStyle().Foreground(t.Text).Render(q)
		}
		lines = append(lines, ansi.Truncate(mutedStyle.Render("Filter: ")+filter, cw, ""))

		items := s.list.Items()
		rows := min(max(1, maxRows-len(lines)-2), max(1, len(items)))
		offset := s.list.Window(rows)
		layout.listTop = len(lines)
		layout.listRows = rows
		layout.offset = offset

		if len(items) == 0 {
			lines = append(lines, mutedStyle.Render("  No matches"))
		}
		for i := 0; i < rows && offset+i < len(items); i++ {
			lines = append(lines, s.renderItem(items[offset+i], offset+i == s.list.Cursor(), cw))
		}
	}

	lines = append(lines, "")
	buttonStyle := lipgloss.NewStyle().Foreground(t.Text)
	if s.focus == focusCancel {
		buttonStyle = buttonStyle.Background(t.Accent).Foreground(t.Surface).Bold(true)
	}
	bw := ansi.StringWidth(cancelLabel)
	x0 := max(0, (cw-bw)/2)
	layout.buttonRow = len(lines)
	layout.buttonX0 = x0
	layout.buttonX1 = x0 + bw
	lines = append(lines, strings.Repeat(" ", x0)+buttonStyle.Render(cancelLabel))

	s.layout = layout
	return strings.Join(lines, "\n")
}

func (s *ProviderPicker) renderItem(item core.PickerItem, current bool, width int) string {
	label := ansi.Truncate(item.Label, max(1, width-2), "…")
	if !current {
		return "  " + label
	}
	style := lipgloss.NewStyle().Foreground(s.theme.Accent).Bold(true)
	if s.list.Focused() {
		style = style.Background(s.theme.Selected)
	}
	return style.Render("> " + label)
}

func isSelected(r core.ProviderResult) bool {
	_, ok := r.(core.ProviderSelected)
	return ok
}
