// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window connects a host window to its accessibility tree.
// A [Window] owns the [store.Store] and [focus.Controller] of the
// window and runs the event loop that turns window activation and
// key chord events into tree updates. Everything that changes the
// tree runs on the goroutine of the loop, which is the only writer
// of the store; other goroutines only send events and read snapshots.
package window

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/errors"
	"cogentcore.org/access/events"
	"cogentcore.org/access/focus"
	"cogentcore.org/access/keymap"
	"cogentcore.org/access/store"
)

// ID identifies a host window.
type ID string

// InitialTreeProvider provides the full initial tree of a window.
// It is called once when the window is created, and again whenever
// a consumer attaches, to resynchronize the tree with the state of
// the application. The update must have a tree descriptor and all
// of the nodes reachable from its root, with the given focus.
type InitialTreeProvider interface {
	InitialTree(id ID, focus access.Focus) access.TreeUpdate
}

// InitialTreeFunc is a function that implements [InitialTreeProvider].
type InitialTreeFunc func(id ID, focus access.Focus) access.TreeUpdate

func (f InitialTreeFunc) InitialTree(id ID, focus access.Focus) access.TreeUpdate {
	return f(id, focus)
}

// resync is the data of the [events.Custom] event that
// resynchronizes the tree after a consumer attaches.
type resync struct{}

// Window is the accessibility side of one host window.
type Window struct {
	id       ID
	provider InitialTreeProvider
	store    *store.Store
	focus    *focus.Controller
	keymap   atomic.Pointer[keymap.Map]

	// queue holds events sent from any goroutine
	// until the event loop processes them.
	queue events.Queue

	// listeners are called before the default handling of each
	// event, and can stop it by marking the event as handled.
	listeners events.Listeners

	closed bool
}

// New returns a new [Window] with the given id, initial tree provider
// and focus controller, and the [keymap.StandardMap]. The store of the
// window is initialized with the initial tree, which is returned as a
// [*store.ConsistencyError] if it is inconsistent.
func New(id ID, provider InitialTreeProvider, ctrl *focus.Controller) (*Window, error) {
	w := &Window{id: id, provider: provider, store: store.New(), focus: ctrl}
	w.queue.Init()
	w.SetKeymap(keymap.StandardMap())
	if err := w.store.Apply(provider.InitialTree(id, ctrl.Focus())); err != nil {
		return nil, fmt.Errorf("window %s: initial tree: %w", id, err)
	}
	return w, nil
}

// ID returns the id of the window.
func (w *Window) ID() ID {
	return w.id
}

// Store returns the accessibility tree store of the window.
func (w *Window) Store() *store.Store {
	return w.store
}

// Controller returns the focus controller of the window.
// It must only be used on the goroutine of the event loop.
func (w *Window) Controller() *focus.Controller {
	return w.focus
}

// SetKeymap sets the keymap that translates key chords.
// It is safe to call from any goroutine.
func (w *Window) SetKeymap(km keymap.Map) *Window {
	w.keymap.Store(&km)
	return w
}

// Keymap returns the current keymap.
func (w *Window) Keymap() keymap.Map {
	return *w.keymap.Load()
}

// On adds a listener for the given event type, which is called before
// the default handling of the event on the goroutine of the event loop.
func (w *Window) On(typ events.Types, fun func(ev events.Event)) {
	w.listeners.Add(typ, fun)
}

// Send sends the given event to the window, to be processed by
// the event loop. It is safe to call from any goroutine.
func (w *Window) Send(ev events.Event) {
	w.queue.Send(ev)
}

// Attach attaches an accessibility consumer to the store of the window,
// and sends an event that resynchronizes the tree with the application,
// so that updates skipped while no consumer was attached are not lost.
// It returns the function to call when the consumer detaches.
// It is safe to call from any goroutine.
func (w *Window) Attach() (detach func()) {
	detach = w.store.Attach()
	w.Send(events.NewCustom(resync{}))
	return detach
}

// IsClosed returns whether the window has received a [events.Close] event.
func (w *Window) IsClosed() bool {
	return w.closed
}

// Run runs the event loop of the window until the context is done,
// the window is closed, or an update is rejected by the store, in
// which case the [*store.ConsistencyError] is returned.
func (w *Window) Run(ctx context.Context) error {
	for !w.closed {
		if err := w.ProcessEvents(); err != nil {
			return err
		}
		if w.closed {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-w.queue.Ready():
		}
	}
	slog.Debug("window: closed", "window", w.id)
	return nil
}

// ProcessEvents dispatches all of the events that have been sent,
// stopping at the first error.
func (w *Window) ProcessEvents() error {
	for {
		ev := w.queue.NextEvent()
		if ev == nil {
			return nil
		}
		if err := w.Dispatch(ev); err != nil {
			return err
		}
	}
}

// Dispatch handles the given event synchronously. It must be called
// on the goroutine of the event loop. Errors from applying the
// resulting update are logged and returned.
func (w *Window) Dispatch(ev events.Event) error {
	w.listeners.Call(ev)
	if ev.IsHandled() {
		return nil
	}
	var err error
	switch ev := ev.(type) {
	case *events.WindowEvent:
		err = w.handleWindow(ev)
	case *events.Key:
		err = w.handleKey(ev)
	case *events.Base:
		if _, ok := ev.Data.(resync); ok {
			err = w.resync()
		}
	}
	if err != nil {
		return errors.Log(fmt.Errorf("window %s: %v: %w", w.id, ev, err))
	}
	return nil
}

func (w *Window) handleWindow(ev *events.WindowEvent) error {
	switch ev.Action {
	case events.Focus, events.FocusLost:
		active := ev.Action == events.Focus
		return w.store.ApplyActivation(active, w.focus.SetWindowActive(active))
	case events.Close:
		w.closed = true
	}
	return nil
}

func (w *Window) handleKey(ev *events.Key) error {
	fun := w.Keymap().Of(ev.Chord())
	if fun == keymap.None {
		return nil
	}
	u, ok := w.focus.HandleKey(fun, w.store.Tree())
	if !ok {
		return nil
	}
	ev.SetHandled()
	return w.publish(u)
}

// publish applies the given update if a consumer is attached.
// The controller and the app have already changed when the update is
// built, so an update skipped here is not lost: attaching a consumer
// resyncs the whole tree from the app, see [Window.Attach].
func (w *Window) publish(u access.TreeUpdate) error {
	return w.store.UpdateIfActive(func() access.TreeUpdate { return u })
}

// resync replaces the whole tree with a new initial tree.
func (w *Window) resync() error {
	u := w.provider.InitialTree(w.id, w.focus.Focus())
	if snap := w.store.Tree(); !snap.IsEmpty() {
		u.Clear = snap.Tree.Root
	}
	slog.Debug("window: resynchronizing tree", "window", w.id)
	return w.store.Apply(u)
}
