package catalog

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow coalesces the burst of events a single file copy
// produces into one notification.
const debounceWindow = 100 * time.Millisecond

// Watcher reports when the contents of the music directories change,
// so the UI can rescan. Notifications are coalesced: one signal on
// Events per burst of filesystem activity.
//
// Example:
//
//	w, err := cat.Watch()
//	if err == nil {
//	    defer w.Close()
//	    go func() {
//	        for range w.Events {
//	            refreshTrackList()
//	        }
//	    }()
//	}
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan struct{}
	closeCh chan struct{}
	once    sync.Once
	logger  *zap.Logger
}

// Watch starts watching the catalog's directories for audio-file
// changes. Directories that don't exist are skipped; they can't
// produce events until the next program start anyway.
func (c *Catalog) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range c.dirs {
		if err := fw.Add(dir); err != nil {
			c.logger.Debug("not watching music dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan struct{}, 1),
		closeCh: make(chan struct{}),
		logger:  c.logger,
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Idempotent; Events is closed once the
// event loop has drained.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)

	deb := newDebouncer(debounceWindow)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !hasAudioExtension(event.Name) {
				continue
			}
			if !deb.allow(event.Name, time.Now()) {
				continue
			}

			select {
			case w.Events <- struct{}{}:
			default:
				// A refresh is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Debug("music dir watch error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

// debouncer coalesces repeated events for one path into a single
// signal per window.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, last: make(map[string]time.Time)}
}

// allow reports whether an event for path at now should signal.
// Entries older than one window are evicted on every call, so the map
// holds only the paths seen within the current window.
func (d *debouncer) allow(path string, now time.Time) bool {
	for p, seen := range d.last {
		if now.Sub(seen) >= d.window {
			delete(d.last, p)
		}
	}
	if _, dup := d.last[path]; dup {
		return false
	}
	d.last[path] = now
	return true
}
