package core

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenMounter is implemented by screens that need a hook right after they
// are pushed.
type ScreenMounter interface {
	Mount() tea.Cmd
}

const recentLimit = 5

// Model is the watch dashboard: a header, a status bar, the deploy summary
// body and a footer of key hints, with modal screens stacked over the body.
type Model struct {
	width         int
	height        int
	screens       ScreenStack
	keys          *KeyRegistry
	status        string
	statusErr     bool
	dirErr        bool
	quitting      bool
	providersDir  string
	catalog       ProviderCatalog
	providerCount int
	current       string
	currentLabel  string
	recent        []string
	exitOnResolve bool
	openOnStart   bool
	result        ProviderResult

	// OpenProviderPicker builds a fresh picker screen each time it is called.
	OpenProviderPicker func(m *Model) Screen
	// WatchProviders waits for the next change to the providers directory.
	WatchProviders func() tea.Cmd
}

func NewModel(keys *KeyRegistry, catalog ProviderCatalog, providersDir string) Model {
	m := Model{
		keys:         keys,
		catalog:      catalog,
		providersDir: providersDir,
		status:       "Ready",
		width:        100,
		height:       32,
	}
	m.refreshProviderCount()
	return m
}

// StandalonePick makes the model open the picker immediately and quit after
// the first resolution.
func (m *Model) StandalonePick() {
	m.exitOnResolve = true
	m.openOnStart = true
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if m.openOnStart {
		cmds = append(cmds, func() tea.Msg { return OpenProviderPickerMsg{} })
	}
	if m.WatchProviders != nil {
		cmds = append(cmds, m.WatchProviders())
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopeDashboard
}

// PushScreen stacks s over the dashboard and runs its mount hook.
func (m *Model) PushScreen(s Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	m.screens.Push(s)
	if mounter, ok := s.(ScreenMounter); ok {
		return mounter.Mount()
	}
	return nil
}

func (m Model) Keys() *KeyRegistry       { return m.keys }
func (m Model) Catalog() ProviderCatalog { return m.catalog }
func (m Model) ProvidersDir() string     { return m.providersDir }
func (m Model) ProviderCount() int       { return m.providerCount }
func (m Model) CurrentProvider() string  { return m.current }
func (m Model) Recent() []string         { return append([]string(nil), m.recent...) }
func (m Model) ScreenDepth() int         { return m.screens.Len() }
func (m Model) Status() (string, bool)   { return m.status, m.statusErr }

// Result returns the last provider resolution, or nil if none happened.
func (m Model) Result() ProviderResult { return m.result }

func (m *Model) refreshProviderCount() {
	if m.catalog == nil {
		m.providerCount = 0
		return
	}
	m.providerCount = len(m.catalog.List(m.providersDir))
}

// checkProvidersDir puts a watch failure or a missing providers directory in
// the status bar, and replaces that error once the directory is back.
func (m *Model) checkProvidersDir(watchErr error) {
	var err error
	switch info, statErr := os.Stat(m.providersDir); {
	case watchErr != nil:
		err = fmt.Errorf("watch providers: %w", watchErr)
	case statErr != nil:
		err = fmt.Errorf("providers directory unavailable: %w", statErr)
	case !info.IsDir():
		err = fmt.Errorf("providers directory unavailable: %s is not a directory", m.providersDir)
	}
	if err != nil {
		m.SetError(err)
		m.dirErr = true
		return
	}
	if m.dirErr && m.statusErr {
		m.SetStatus("Providers directory available")
	}
	m.dirErr = false
}

func (m *Model) applyResult(r ProviderResult) {
	m.result = r
	switch r := r.(type) {
	case ProviderSelected:
		m.current = r.ID
		m.currentLabel = r.ID
		if m.catalog != nil {
			m.currentLabel = m.catalog.DisplayName(r.ID, m.providersDir)
		}
		m.SetStatus("Deploy provider: " + m.currentLabel)
		m.pushRecent("selected " + m.currentLabel + " (" + r.ID + ")")
	case ProviderCancelled:
		m.SetStatus("Provider selection cancelled")
		m.pushRecent("cancelled")
	}
}

func (m *Model) pushRecent(entry string) {
	m.recent = append([]string{entry}, m.recent...)
	if len(m.recent) > recentLimit {
		m.recent = m.recent[:recentLimit]
	}
}
