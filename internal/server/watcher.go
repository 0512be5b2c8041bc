package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/huangsam/folio/internal/contract"
)

// sourceWatcher reports changes to the dataset source files.
type sourceWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
}

// newSourceWatcher watches the directories holding paths. Editors replace
// files on save, so watching the file itself would lose the watch.
func newSourceWatcher(paths ...string) (*sourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &sourceWatcher{watcher: watcher, files: make(map[string]struct{})}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
		sw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}
	return sw, nil
}

// relevant reports whether event changes the content of a watched file.
func (sw *sourceWatcher) relevant(event fsnotify.Event) bool {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if _, ok := sw.files[abs]; !ok {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// run calls onChange for every relevant event until ctx is done.
func (sw *sourceWatcher) run(ctx context.Context, onChange func(path string)) {
	defer func() { _ = sw.watcher.Close() }()
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if sw.relevant(event) {
				onChange(event.Name)
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but keep watching
			contract.LogWarn("watching sources", err)
		}
	}
}
