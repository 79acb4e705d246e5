package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/jask/watchdash/core"
	"github.com/jask/watchdash/internal/config"
	"github.com/jask/watchdash/internal/logging"
	"github.com/jask/watchdash/internal/providers"
	"github.com/jask/watchdash/internal/watch"
	"github.com/jask/watchdash/screens"
)

var errPickCancelled = errors.New("provider selection cancelled")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errPickCancelled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// runDashboard runs the TUI until the user quits. In pick mode it opens the
// provider picker straight away and returns as soon as it resolves.
func runDashboard(cfg config.Config, pick bool) (core.ProviderResult, error) {
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	size := core.DialogSize{
		Width:        cfg.UI.DialogWidth,
		MaxWidthPct:  cfg.UI.MaxWidthPct,
		MaxHeightPct: cfg.UI.MaxHeightPct,
	}

	m := core.NewModel(keys, providers.Dir{}, cfg.Providers.Dir)
	m.OpenProviderPicker = func(m *core.Model) core.Screen {
		return screens.NewProviderPicker(m.ProvidersDir(), m.Catalog(), m.Keys(), nil).WithSize(size)
	}
	if pick {
		m.StandalonePick()
	}

	if cfg.Watch.Enabled && !pick {
		w, err := watch.New(cfg.Providers.Dir, cfg.Watch.Debounce)
		if err != nil {
			log.Warn().Err(err).Msg("provider watch disabled")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			defer w.Close()
			go w.Run(ctx)
			m.WatchProviders = w.Next
		}
	}

	log.Info().Str("providers_dir", cfg.Providers.Dir).Bool("pick", pick).Msg("starting dashboard")
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return nil, fmt.Errorf("run dashboard: %w", err)
	}
	fm, ok := final.(core.Model)
	if !ok {
		return nil, nil
	}
	return fm.Result(), nil
}
