// Package watch reports changes to the providers directory.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/jask/watchdash/core"
)

// Watcher coalesces filesystem events on a directory into change
// notifications. Bursts closer together than the debounce window produce a
// single notification.
//
// The parent directory is watched too, so a providers directory that is
// removed and created again is picked up without a restart.
type Watcher struct {
	dir      string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changes  chan struct{}
	errs     chan error
}

func New(dir string, debounce time.Duration) (*Watcher, error) {
	dir = filepath.Clean(dir)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if parent := filepath.Dir(dir); parent != dir {
		if err := fw.Add(parent); err != nil {
			log.Warn().Err(err).Str("dir", parent).Msg("providers parent not watched")
		}
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		fs:       fw,
		changes:  make(chan struct{}, 1),
		errs:     make(chan error, 1),
	}, nil
}

// Changes delivers one value per settled burst of events. It is closed when
// Run returns.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Run pumps events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod || !w.relevant(ev.Name) {
				continue
			}
			log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("providers dir event")
			w.follow(ev)
			if w.debounce <= 0 {
				w.notify()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.notify()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// relevant keeps events on the providers directory itself and its direct
// entries. Siblings seen through the parent watch are dropped.
func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	return name == w.dir || filepath.Dir(name) == w.dir
}

// follow re-attaches the directory watch when the providers directory itself
// is moved away or created again.
func (w *Watcher) follow(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.dir {
		return
	}
	switch {
	case ev.Has(fsnotify.Rename):
		_ = w.fs.Remove(w.dir)
	case ev.Has(fsnotify.Create):
		if err := w.fs.Add(w.dir); err != nil {
			w.report(fmt.Errorf("rewatch %s: %w", w.dir, err))
		}
	}
}

// Next waits for the next change or watcher error and reports it to the
// program. It returns a nil message once the watcher has stopped.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.changes:
			if !ok {
				return nil
			}
			return core.ProvidersChangedMsg{Dir: w.dir}
		case err := <-w.errs:
			return core.ProvidersChangedMsg{Dir: w.dir, Err: err}
		}
	}
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func (w *Watcher) report(err error) {
	log.Warn().Err(err).Str("dir", w.dir).Msg("providers watcher error")
	select {
	case w.errs <- err:
	default:
	}
}
