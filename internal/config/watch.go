package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher reloads settings when the file changes on disk, so a
// running TUI picks up edits made from another terminal. Events are
// debounced because editors fire several writes per save.
type SettingsWatcher struct {
	fsWatcher *fsnotify.Watcher
	settings  chan *Settings
	done      chan struct{}
	closeOnce sync.Once

	debounceMu sync.Mutex
	debounce   *time.Timer
}

const settingsDebounce = 200 * time.Millisecond

// WatchSettings starts watching the settings file's directory (the
// file itself may not exist yet, or be replaced atomically by editors).
func WatchSettings() (*SettingsWatcher, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	if err := EnsureGlobalDir(); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &SettingsWatcher{
		fsWatcher: fsWatcher,
		settings:  make(chan *Settings, 1),
		done:      make(chan struct{}),
	}
	go w.run(filepath.Base(path))
	return w, nil
}

// Settings delivers a freshly loaded Settings after each change.
func (w *SettingsWatcher) Settings() <-chan *Settings {
	return w.settings
}

// Close stops the watcher.
func (w *SettingsWatcher) Close() error {
	w.closeOnce.Do(func() { close(w.done) })
	return w.fsWatcher.Close()
}

func (w *SettingsWatcher) run(fileName string) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *SettingsWatcher) scheduleReload() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(settingsDebounce, func() {
		s, err := LoadSettings()
		if err != nil {
			return
		}
		select {
		case w.settings <- s:
		default: // drop if the previous reload is still unread
		}
	})
}
