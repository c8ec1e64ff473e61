package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config whenever its file changes on disk and delivers
// each successfully parsed result on Configs. Parse failures go to Errors and
// the previous config stays in effect.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the config file at path. The containing directory is
// watched rather than the file itself so editors that replace the file on
// save keep firing events.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

// run owns Configs and Errors; only it sends on them, and it closes them on
// exit so Close cannot race a pending send.
func (w *Watcher) run() {
	defer close(w.Configs)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			cfg, err := Load(w.path)
			if err != nil {
				w.deliverErr(err)
				continue
			}
			w.deliver(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.deliverErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// deliver drops the stale pending config when the consumer is behind; only
// the newest state matters.
func (w *Watcher) deliver(cfg Config) {
	select {
	case w.Configs <- cfg:
	default:
		select {
		case <-w.Configs:
		default:
		}
		select {
		case w.Configs <- cfg:
		default:
		}
	}
}

func (w *Watcher) deliverErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
