package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keybridge/internal/logging"
)

// watchDebounce coalesces the bursts of writes editors produce on save.
const watchDebounce = 100 * time.Millisecond

// Watcher reloads a Config when its backing file changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	cfg  *Config
	log  *logging.Logger
	done chan struct{}
}

// Watch starts watching the config file's directory and reloads cfg on
// changes to the file. Watching the directory rather than the file survives
// the rename-and-replace dance most editors do on save.
func Watch(path string, cfg *Config, log *logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		path: abs,
		cfg:  cfg,
		log:  log.WithComponent("config-watcher"),
		done: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed, keeping previous settings: %v", err)
		return
	}
	if err := w.cfg.Apply(s); err != nil {
		w.log.Warn("rejecting reloaded settings: %v", err)
		return
	}
	w.log.Info("settings reloaded from %s", w.path)
}
