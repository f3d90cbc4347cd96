package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the preferences whenever the config file changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(AppSettings)
	done     chan struct{}
	path     string
	wg       sync.WaitGroup
}

// Watch starts watching the config file at path. The directory is watched
// rather than the file itself since editors often replace the file on save.
func Watch(path string, onChange func(AppSettings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errWatchConfig.Wrap(err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, errWatchConfig.Wrap(err)
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
		path:     filepath.Clean(path),
	}

	w.wg.Add(1)

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(ev.Name) != w.path {
				continue
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			settings, err := LoadSettings(w.path)
			if err != nil {
				slog.Warn("reloading settings failed", slog.Any("error", err))
				continue
			}

			slog.Debug("settings reloaded", slog.String("path", w.path))

			w.onChange(settings)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("config watcher error", slog.Any("error", err))
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)

	err := w.watcher.Close()

	w.wg.Wait()

	return err
}
