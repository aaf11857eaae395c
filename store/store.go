// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides [Store], the authoritative, versioned
// accessibility tree of one window, built by applying
// [access.TreeUpdate]s in order.
//
// The host UI thread is the only writer, through [Store.Apply], and
// the accessibility bridge reads [Snapshot]s from any goroutine. Each
// update is applied to a new copy of the content, which replaces the
// old one under a single lock, so that readers always see the nodes,
// descriptor and focus of the same update.
package store

//go:generate core generate

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/access/access"
)

// States are the states of a [Store].
type States int32 //enums:enum

const (
	// Uninitialized stores have no content. They become Initialized
	// with the first update that has a tree descriptor.
	Uninitialized States = iota

	// Initialized stores have a descriptor and at least one node.
	Initialized
)

// Store is the accessibility tree of one window. The zero value
// is an Uninitialized store that is ready to use.
type Store struct {

	// mu guards st and windowActive as one unit.
	mu sync.RWMutex

	// st is the current content, which is never modified once set.
	st *state

	windowActive bool

	// consumers is the number of attached accessibility consumers.
	consumers atomic.Int32

	listenersMu sync.Mutex
	listeners   []func(s Snapshot)
}

// New returns a new Uninitialized [Store].
func New() *Store {
	return &Store{}
}

// Apply applies the given update atomically. An update that would
// leave the tree inconsistent is rejected with a [*ConsistencyError],
// leaving the store exactly as it was. After Apply returns, all reads
// reflect the update, and the [Store.OnApply] listeners have been called.
func (s *Store) Apply(u access.TreeUpdate) error {
	s.mu.Lock()
	next, err := s.st.apply(u)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.st = next
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("store: applied update", "tree", snap.Tree.ID, "version", snap.Version, "update", u.String())
	s.notify(snap)
	return nil
}

// Tree returns a [Snapshot] of the current content,
// which is empty if the store is Uninitialized.
func (s *Store) Tree() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Focus returns the current focus.
func (s *Store) Focus() FocusState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focusLocked()
}

// State returns the current state of the store.
func (s *Store) State() States {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st == nil {
		return Uninitialized
	}
	return Initialized
}

// Version returns the number of updates that have been applied.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st == nil {
		return 0
	}
	return s.st.version
}

// SetWindowActive records whether the host window is active,
// which is reported in [FocusState.WindowActive]. The store only
// stores it; the focus policy belongs to the host.
func (s *Store) SetWindowActive(active bool) {
	s.mu.Lock()
	if s.windowActive == active {
		s.mu.Unlock()
		return
	}
	s.windowActive = active
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// ApplyActivation records whether the host window is active, like
// [Store.SetWindowActive], and applies the given update, which
// typically publishes the focus for the new activation, as one change:
// readers and [Store.OnApply] listeners never see the new flag with
// the old focus. If no consumer is attached, only the flag is set.
// If the update is rejected, the flag is not set either.
func (s *Store) ApplyActivation(active bool, u access.TreeUpdate) error {
	if !s.IsActive() {
		s.SetWindowActive(active)
		return nil
	}
	s.mu.Lock()
	next, err := s.st.apply(u)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.st = next
	s.windowActive = active
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("store: applied activation", "tree", snap.Tree.ID, "version", snap.Version, "active", active, "update", u.String())
	s.notify(snap)
	return nil
}

// Attach records that an accessibility consumer is attached,
// and returns a function to call when it detaches. Calling
// the returned function more than once has no further effect.
func (s *Store) Attach() (detach func()) {
	n := s.consumers.Add(1)
	slog.Debug("store: consumer attached", "consumers", n)
	var once sync.Once
	return func() {
		once.Do(func() {
			n := s.consumers.Add(-1)
			slog.Debug("store: consumer detached", "consumers", n)
		})
	}
}

// IsActive returns whether any accessibility consumer is attached.
func (s *Store) IsActive() bool {
	return s.consumers.Load() > 0
}

// UpdateIfActive calls the given function and applies the update it
// returns if a consumer is attached, and otherwise does nothing and
// returns nil without calling the function.
func (s *Store) UpdateIfActive(build func() access.TreeUpdate) error {
	if !s.IsActive() {
		return nil
	}
	return s.Apply(build())
}

// OnApply adds a function that is called with the new snapshot
// after every successful [Store.Apply] and every change of
// [Store.SetWindowActive]. It is called on the goroutine of the
// writer, outside of the store lock.
func (s *Store) OnApply(fun func(s Snapshot)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fun)
}

func (s *Store) notify(snap Snapshot) {
	s.listenersMu.Lock()
	ls := s.listeners
	s.listenersMu.Unlock()
	for _, fun := range ls {
		fun(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Focus: s.focusLocked(), st: s.st}
	if s.st != nil {
		snap.Version = s.st.version
		snap.Tree = s.st.tree
	}
	return snap
}

func (s *Store) focusLocked() FocusState {
	fs := FocusState{WindowActive: s.windowActive}
	if s.st != nil {
		fs.ID = s.st.focus
	}
	return fs
}
