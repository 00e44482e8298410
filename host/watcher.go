// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/neonops/infrascene/scene"
)

// DefaultQuiet is the default for [Watcher.Quiet].
const DefaultQuiet = 100 * time.Millisecond

// Reload is a changed description file, posted by a [Watcher].
type Reload struct {

	// Path is the changed file.
	Path string

	// Description is the parsed description, nil if Err is set.
	Description *scene.Description

	// Err is the error parsing the file.
	Err error
}

// Watcher watches description files for changes and posts them as
// [Reload] requests. It only parses files; the [Selector] applies them
// on its own goroutine in [Selector.Tick].
type Watcher struct {

	// Quiet is how long a file must be unchanged before it is reloaded,
	// since editors save in several writes.
	Quiet time.Duration

	// Logger defaults to [slog.Default].
	Logger *slog.Logger

	watcher *fsnotify.Watcher
	reloads chan Reload

	// dirs are the directories watched for any description file,
	// and files the single files watched through their directory.
	dirs, files map[string]bool
}

// NewWatcher returns a watcher for the given description files and
// directories. Directories are watched for any description file, and
// a file for changes to itself only.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("host: creating file watcher: %w", err)
	}
	w := &Watcher{
		Quiet: DefaultQuiet, watcher: fw, reloads: make(chan Reload, 16),
		dirs: map[string]bool{}, files: map[string]bool{},
	}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("host: watching %q: %w", path, err)
	}
	dir := filepath.Clean(path)
	if st.IsDir() {
		w.dirs[dir] = true
	} else {
		// editors replace files on save, so watch the directory
		w.files[dir] = true
		dir = filepath.Dir(dir)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("host: watching %q: %w", dir, err)
	}
	return nil
}

// Reloads returns the channel of reload requests. It is closed when
// the watcher stops.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Start processes file events in a new goroutine until ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func isDescription(name string) bool {
	if strings.HasPrefix(filepath.Base(name), ".") {
		return false
	}
	_, err := scene.FormatOf(name)
	return err == nil
}

// wants returns whether a change to the named file is reloaded.
func (w *Watcher) wants(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	return w.dirs[filepath.Dir(name)] && isDescription(name)
}

func (w *Watcher) run(ctx context.Context) {
	log := w.Logger
	if log == nil {
		log = slog.Default()
	}
	quiet := w.Quiet
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	defer close(w.reloads)
	defer w.watcher.Close()

	pending := map[string]bool{}
	timer := time.NewTimer(quiet)
	timer.Stop()

	flush := func() {
		for path := range pending {
			r := Reload{Path: path}
			r.Description, r.Err = scene.LoadFile(path)
			if r.Err == nil && r.Description.Name == "" {
				r.Description.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			select {
			case w.reloads <- r:
			case <-ctx.Done():
				return
			}
		}
		clear(pending)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.wants(ev.Name) {
				continue
			}
			log.Debug("description changed", "path", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = true
			timer.Reset(quiet)
		case <-timer.C:
			flush()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("file watcher", "err", err)
		}
	}
}
