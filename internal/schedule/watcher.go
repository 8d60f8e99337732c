package schedule

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wethinkt/go-suhoor/internal/tuilog"
)

// Reload is the result of re-reading a watched timetable file.
type Reload struct {
	Timetable *Timetable
	Err       error
}

// Watcher re-parses a timetable file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher watches path. The parent directory is watched so editors
// that save by renaming a temp file over path are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{path: abs, debounce: debounce, watcher: fw}, nil
}

// Start begins watching and returns a channel of reloads. The channel is
// closed when ctx is canceled or Close is called.
func (w *Watcher) Start(ctx context.Context) <-chan Reload {
	out := make(chan Reload, 1)
	go w.loop(ctx, out)
	return out
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context, out chan<- Reload) {
	defer close(out)

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

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tuilog.Log.Warn("Timetable watcher error", "error", err)

		case <-fire:
			fire = nil
			tt, err := Load(w.path)
			if err != nil {
				tuilog.Log.Warn("Timetable reload failed", "path", w.path, "error", err)
			} else {
				tuilog.Log.Info("Timetable reloaded", "path", w.path, "name", tt.Name())
			}
			select {
			case out <- Reload{Timetable: tt, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
