package watch

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"malkedit/codec"
	"malkedit/types"
)

// Snapshot is one decoded save, as written by the game.
type Snapshot struct {
	Filename string
	Fields   types.SaveFields
}

type Watcher interface {
	Start_watching(snapshots chan<- *Snapshot) error
	Stop_watching()
}

// Settle is how long to wait after a write event before reading the file, so that the game can finish with it.
var Settle = 2 * time.Second

// New_watcher watches dir for writes to files matching pattern (a filepath.Match glob).
func New_watcher(dir string, pattern string, logger *zap.Logger) Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dir_watcher{dir: dir, pattern: pattern, logger: logger}
}

type dir_watcher struct {
	dir     string
	pattern string
	logger  *zap.Logger
	watcher *fsnotify.Watcher

	done      chan struct{}
	exited    chan struct{}
	stop_once sync.Once

	// last bytes sent per filename; only touched by the event goroutine
	last map[string][]byte
}

func (dw *dir_watcher) Start_watching(snapshots chan<- *Snapshot) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dw.watcher = watcher
	dw.done = make(chan struct{})
	dw.exited = make(chan struct{})
	dw.last = map[string][]byte{}

	go func() {
		defer close(dw.exited)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// One save from the game is a Create and/or several Writes; handle_file drops the repeats
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if dw.matches(event.Name) {
						dw.handle_file(event.Name, snapshots)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				dw.logger.Warn("watch error", zap.Error(err))
			case <-dw.done:
				return
			}
		}
	}()

	err = dw.watcher.Add(dw.dir)
	if err != nil {
		dw.Stop_watching()
	}

	return err
}

// Stop_watching may be called more than once.  A pending snapshot is dropped rather than delivered.
func (dw *dir_watcher) Stop_watching() {
	dw.stop_once.Do(func() {
		if dw.done != nil {
			close(dw.done)
		}
		if dw.watcher != nil {
			dw.watcher.Close()
		}
	})
}

func (dw *dir_watcher) matches(filename string) bool {
	ok, err := filepath.Match(dw.pattern, filepath.Base(filename))
	return err == nil && ok
}

func (dw *dir_watcher) handle_file(filename string, out chan<- *Snapshot) {
	select {
	case <-time.After(Settle):
	case <-dw.done:
		return
	}

	bytes, snap, err := read_snapshot(filename)
	if err != nil {
		// Foreign or half-written files are expected here
		dw.logger.Info("skipping file", zap.String("file", filename), zap.Error(err))
		return
	}
	if prev, seen := dw.last[filename]; seen && slices.Equal(prev, bytes) {
		dw.logger.Debug("unchanged since last snapshot", zap.String("file", filename))
		return
	}

	select {
	case out <- snap:
		dw.last[filename] = bytes
	case <-dw.done:
	}
}

// Read_snapshot reads and decodes one save file.
func Read_snapshot(filename string) (*Snapshot, error) {
	_, snap, err := read_snapshot(filename)
	return snap, err
}

func read_snapshot(filename string) ([]byte, *Snapshot, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	fields, err := codec.Decode(bytes)
	if err != nil {
		return nil, nil, err
	}
	return bytes, &Snapshot{filename, fields}, nil
}
