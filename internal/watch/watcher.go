// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package watch monitors a workspace's manifest and config directory
// for edits and reports debounced change events, so a long-running
// command can react (typically by re-running install) instead of the
// user having to re-invoke augent after every manifest edit.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is a single debounced change notification.
type Event struct {
	// Path is the file that triggered the event.
	Path string
	// Timestamp is when the event was emitted, after debouncing.
	Timestamp time.Time
}

// Options configures a Watcher's debounce behavior.
type Options struct {
	// DebounceDuration is the minimum time between emitted events,
	// collapsing the burst of writes a single save can produce (editors
	// frequently write a file, then rewrite its metadata). Defaults to
	// 300ms when zero.
	DebounceDuration time.Duration
}

// Watcher monitors a set of paths (files or directories) for changes
// using fsnotify and emits debounced Events on its channel.
type Watcher struct {
	fswatch *fsnotify.Watcher
	options Options
	events  chan Event
	errors  chan error
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a Watcher with the given options. Call Start to begin
// monitoring and Stop to release the underlying OS resources.
func New(options Options) (*Watcher, error) {
	if options.DebounceDuration == 0 {
		options.DebounceDuration = 300 * time.Millisecond
	}

	fswatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		fswatch: fswatch,
		options: options,
		events:  make(chan Event, 16),
		errors:  make(chan error, 8),
	}, nil
}

// Start begins monitoring paths and returns immediately; events arrive
// on Events() until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if err := w.fswatch.Add(p); err != nil {
			return fmt.Errorf("failed to watch path %s: %w", p, err)
		}
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.eventLoop(ctx)
	return nil
}

// Events returns the channel debounced change events arrive on.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors returns the channel underlying fsnotify errors arrive on.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Stop cancels monitoring, waits for the event loop to exit, and closes
// both channels. Call it once: a second call panics when it closes the
// already-closed channels.
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
	}
	closeErr := w.fswatch.Close()
	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return closeErr
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()

	var (
		debounceTimer *time.Timer
		pendingPath   string
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	fire := make(chan struct{})

	for {
		select {
		case <-ctx.Done():
			return

		case fsEvent, ok := <-w.fswatch.Events:
			if !ok {
				return
			}
			pendingPath = fsEvent.Name
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.options.DebounceDuration, func() {
				select {
				case fire <- struct{}{}:
				case <-ctx.Done():
				}
			})

		case <-fire:
			select {
			case w.events <- Event{Path: pendingPath, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fswatch.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-ctx.Done():
				return
			}
		}
	}
}
