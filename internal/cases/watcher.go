// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     cases
// Description: Re-runs a case file whenever it changes on disk
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cases

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
)

// DefaultDebounce collapses the bursts of events editors produce on save
const DefaultDebounce = 200 * time.Millisecond

// ReportFunc receives the outcome of every run
type ReportFunc func(report *Report, err error)

// Watch runs the case file once, then again after every write, create or
// rename of it, until ctx ends. The directory is watched rather than the
// file so that editors replacing the file on save are seen.
func (r *Runner) Watch(ctx context.Context, path string, debounce time.Duration, fn ReportFunc) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to resolve case file").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cases.Watch").
			WithDetail("path", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cases.Watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cases.Watch").
			WithDetail("dir", filepath.Dir(abs))
	}

	logger := r.logger.WithField("file", filepath.Base(abs))
	logger.Info("Watching case file for changes")

	fn(r.RunFile(ctx, path))

	// A nil channel blocks until the first relevant event arms the timer
	var rerun <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Case file changed", mdwlog.Fields{"op": event.Op.String()})
			rerun = time.After(debounce)

		case <-rerun:
			rerun = nil
			fn(r.RunFile(ctx, path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorWithErr("Watcher error", err)
		}
	}
}
