// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/access/base/errors"
)

// Watch watches the given keymap file and calls the given function
// with the newly opened [Map] each time the file is written or
// replaced. Files that fail to open are logged and skipped. Watch
// blocks until the context is done, so it is typically run in its
// own goroutine. The directory of the file is watched so that
// editors that save by renaming are handled.
func Watch(ctx context.Context, filename string, fun func(km Map)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			km, err := Open(abs)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("keymap: reloaded", "file", abs, "chords", len(km))
			fun(km)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
