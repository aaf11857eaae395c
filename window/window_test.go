// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/access/access"
	"cogentcore.org/access/events"
	"cogentcore.org/access/events/key"
	"cogentcore.org/access/focus"
	"cogentcore.org/access/keymap"
	"cogentcore.org/access/store"
)

// provider returns a window with a list of n focusable items,
// counting how many times it is called.
type provider struct {
	n     int
	calls int
}

func (p *provider) InitialTree(id ID, f access.Focus) access.TreeUpdate {
	p.calls++
	root := access.NewNode(1, access.List).SetName(string(id))
	nodes := []access.Node{root}
	for i := range p.n {
		id := access.NodeID(i + 2)
		root = root.AddChildren(id)
		nodes = append(nodes, access.NewNode(id, access.ListItem).SetFocusable(true))
	}
	nodes[0] = root
	tr := access.NewTree("list", 1, access.UTF8)
	return access.TreeUpdate{Nodes: nodes, Tree: &tr, Focus: f}
}

func newWindow(t *testing.T, n int) (*Window, *provider) {
	p := &provider{n: n}
	w, err := New("main", p, focus.NewController(2))
	require.NoError(t, err)
	return w, p
}

func send(t *testing.T, w *Window, evs ...events.Event) {
	t.Helper()
	for _, ev := range evs {
		w.Send(ev)
	}
	require.NoError(t, w.ProcessEvents())
}

func TestNew(t *testing.T) {
	w, p := newWindow(t, 3)
	assert.Equal(t, ID("main"), w.ID())
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, store.Initialized, w.Store().State())
	assert.Equal(t, 4, w.Store().Tree().Len())
	assert.False(t, w.Store().Focus().Has())
	assert.Equal(t, keymap.StandardMap(), w.Keymap())
}

func TestNewInconsistent(t *testing.T) {
	bad := InitialTreeFunc(func(id ID, f access.Focus) access.TreeUpdate {
		tr := access.NewTree("bad", 1, access.UTF8)
		return access.TreeUpdate{Nodes: []access.Node{access.NewNode(1, access.Window).SetChildren(2)}, Tree: &tr}
	})
	_, err := New("bad", bad, focus.NewController(2))
	assert.ErrorIs(t, err, store.ErrConsistency)
}

func TestSkipWithoutConsumer(t *testing.T) {
	w, _ := newWindow(t, 3)
	send(t, w, events.NewWindowActivation(true), events.NewKey(key.CodeTab, 0))
	assert.Equal(t, uint64(1), w.Store().Version())
	assert.False(t, w.Store().Focus().Has())
	assert.True(t, w.Store().Focus().WindowActive)
	// the controller still follows the input
	assert.Equal(t, access.NodeID(3), w.Controller().Candidate())
}

func TestAttachResync(t *testing.T) {
	w, p := newWindow(t, 3)
	send(t, w, events.NewWindowActivation(true), events.NewKey(key.CodeTab, 0))

	detach := w.Attach()
	defer detach()
	assert.True(t, w.Store().IsActive())
	send(t, w)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, uint64(2), w.Store().Version())
	assert.Equal(t, access.NodeID(3), w.Store().Focus().ID)
	assert.Equal(t, 4, w.Store().Tree().Len())
}

func TestResyncShrinks(t *testing.T) {
	w, p := newWindow(t, 3)
	p.n = 1
	detach := w.Attach()
	defer detach()
	send(t, w)
	snap := w.Store().Tree()
	assert.Equal(t, []access.NodeID{1, 2}, snap.IDs())
	assert.False(t, snap.Has(3))
}

func TestNavigate(t *testing.T) {
	w, _ := newWindow(t, 3)
	defer w.Attach()()
	send(t, w, events.NewWindowActivation(true))
	assert.Equal(t, access.NodeID(2), w.Store().Focus().ID)

	send(t, w, events.NewKey(key.CodeTab, 0))
	assert.Equal(t, access.NodeID(3), w.Store().Focus().ID)
	send(t, w, events.NewKey(key.CodeTab, key.Shift), events.NewKey(key.CodeTab, key.Shift))
	assert.Equal(t, access.NodeID(4), w.Store().Focus().ID)

	send(t, w, events.NewWindowActivation(false))
	assert.False(t, w.Store().Focus().Has())
	assert.False(t, w.Store().Focus().WindowActive)

	// keys that are not in the keymap do nothing
	v := w.Store().Version()
	send(t, w, events.NewKey(key.CodeEscape, 0))
	assert.Equal(t, v, w.Store().Version())
}

func TestActivate(t *testing.T) {
	w, _ := newWindow(t, 2)
	defer w.Attach()()
	send(t, w, events.NewWindowActivation(true), events.NewKey(key.CodeReturnEnter, 0))
	n, ok := w.Store().Tree().Node(2)
	require.True(t, ok)
	assert.Equal(t, "You pressed it", n.Name)
	assert.Equal(t, access.NodeID(2), w.Store().Focus().ID)
}

func TestSetKeymap(t *testing.T) {
	w, _ := newWindow(t, 3)
	defer w.Attach()()
	w.SetKeymap(keymap.Map{key.NewChord(key.CodeDownArrow, 0): keymap.FocusNext})
	send(t, w, events.NewWindowActivation(true), events.NewKey(key.CodeTab, 0))
	assert.Equal(t, access.NodeID(2), w.Store().Focus().ID)
	send(t, w, events.NewKey(key.CodeDownArrow, 0))
	assert.Equal(t, access.NodeID(3), w.Store().Focus().ID)
}

func TestListenersHandle(t *testing.T) {
	w, _ := newWindow(t, 3)
	defer w.Attach()()
	var keys int
	w.On(events.KeyChord, func(ev events.Event) {
		keys++
		ev.SetHandled()
	})
	send(t, w, events.NewWindowActivation(true), events.NewKey(key.CodeTab, 0))
	assert.Equal(t, 1, keys)
	assert.Equal(t, access.NodeID(2), w.Store().Focus().ID)
}

func TestDispatchError(t *testing.T) {
	w, _ := newWindow(t, 3)
	defer w.Attach()()
	send(t, w)
	// an activated node with a dangling child is rejected
	w.Controller().SetActivator(focus.ActivatorFunc(func(n access.Node) access.Node {
		return n.SetChildren(99)
	}))
	send(t, w, events.NewWindowActivation(true))
	v := w.Store().Version()
	err := w.Dispatch(events.NewKey(key.CodeSpacebar, 0))
	assert.ErrorIs(t, err, store.ErrConsistency)
	assert.Equal(t, v, w.Store().Version())
}

func TestRun(t *testing.T) {
	w, _ := newWindow(t, 3)
	defer w.Attach()()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error)
	go func() { done <- w.Run(ctx) }()
	w.Send(events.NewWindowActivation(true))
	w.Send(events.NewKey(key.CodeTab, 0))
	w.Send(events.NewWindow(events.Close))
	require.NoError(t, <-done)
	assert.True(t, w.IsClosed())
	assert.Equal(t, access.NodeID(3), w.Store().Focus().ID)
}

func TestRunCancel(t *testing.T) {
	w, _ := newWindow(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
	assert.False(t, w.IsClosed())
}
