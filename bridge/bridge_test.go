// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/access/access"
	"cogentcore.org/access/base/websocket"
	"cogentcore.org/access/events"
	"cogentcore.org/access/events/key"
	"cogentcore.org/access/hello"
	"cogentcore.org/access/store"
)

func newStore(t *testing.T) *store.Store {
	st := store.New()
	tr := access.NewTree("test", 1, access.UTF8)
	require.NoError(t, st.Apply(access.TreeUpdate{
		Nodes: []access.Node{
			access.NewNode(1, access.Window).SetName("Hello world").SetChildren(2),
			access.NewNode(2, access.Button).SetName("Button 1").SetFocusable(true),
		},
		Tree:  &tr,
		Focus: access.FocusOn(2),
	}))
	return st
}

func get(t *testing.T, url string) []byte {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

// connect connects to the bridge, returning the client
// and a channel receiving its messages.
func connect(t *testing.T, ts *httptest.Server) (*websocket.Client, chan Message) {
	c, err := websocket.Connect("ws" + strings.TrimPrefix(ts.URL, "http") + "/ws")
	require.NoError(t, err)
	msgs := make(chan Message, 16)
	c.OnMessage(func(typ websocket.MessageTypes, b []byte) {
		var m Message
		if assert.NoError(t, json.Unmarshal(b, &m)) {
			msgs <- m
		}
	})
	return c, msgs
}

func next(t *testing.T, msgs chan Message) Message {
	t.Helper()
	select {
	case m := <-msgs:
		return m
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func TestNewMessage(t *testing.T) {
	st := newStore(t)
	m := NewMessage(st.Tree())
	assert.Equal(t, uint64(1), m.Version)
	assert.Equal(t, access.NewTree("test", 1, access.UTF8), m.Tree)
	assert.Len(t, m.Nodes, 2)
	assert.Equal(t, Focus{ID: 2, Has: true}, m.Focus)
	n, ok := m.Node(2)
	assert.True(t, ok)
	assert.Equal(t, "Button 1", n.Name)
	_, ok = m.Node(3)
	assert.False(t, ok)

	m = NewMessage(store.New().Tree())
	assert.NotNil(t, m.Nodes)
	assert.Empty(t, m.Nodes)
}

func TestGetTree(t *testing.T) {
	ts := httptest.NewServer(NewServer(newStore(t), nil).Handler())
	defer ts.Close()

	var m Message
	require.NoError(t, json.Unmarshal(get(t, ts.URL+"/tree"), &m))
	assert.Equal(t, uint64(1), m.Version)
	assert.Equal(t, access.NodeID(1), m.Tree.Root)
	assert.Equal(t, "Hello world", m.Nodes[0].Name)

	y := string(get(t, ts.URL+"/tree?format=yaml"))
	assert.Contains(t, y, "version: 1")
	assert.Contains(t, y, "name: Button 1")
}

func TestGetFocus(t *testing.T) {
	st := newStore(t)
	st.SetWindowActive(true)
	ts := httptest.NewServer(NewServer(st, nil).Handler())
	defer ts.Close()

	var f Focus
	require.NoError(t, json.Unmarshal(get(t, ts.URL+"/focus"), &f))
	assert.Equal(t, Focus{ID: 2, Has: true, WindowActive: true}, f)

	resp, err := http.Post(ts.URL+"/focus", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestWebSocket(t *testing.T) {
	st := newStore(t)
	sv := NewServer(st, nil)
	ts := httptest.NewServer(sv.Handler())
	defer ts.Close()

	c, msgs := connect(t, ts)
	m := next(t, msgs)
	assert.Equal(t, uint64(1), m.Version)
	assert.True(t, st.IsActive())
	assert.Equal(t, 1, sv.Consumers())

	require.NoError(t, st.UpdateIfActive(func() access.TreeUpdate {
		return access.TreeUpdate{Nodes: []access.Node{
			access.NewNode(2, access.Button).SetName("You pressed button 1").SetFocusable(true),
		}}
	}))
	m = next(t, msgs)
	assert.Equal(t, uint64(2), m.Version)
	n, _ := m.Node(2)
	assert.Equal(t, "You pressed button 1", n.Name)

	st.SetWindowActive(true)
	m = next(t, msgs)
	assert.True(t, m.Focus.WindowActive)

	// messages from the consumer are ignored
	require.NoError(t, c.Send(websocket.TextMessage, []byte("hello")))
	require.NoError(t, c.Close())
	assert.Eventually(t, func() bool { return !st.IsActive() && sv.Consumers() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestWebSocketWindow(t *testing.T) {
	w, err := hello.NewApp("test").NewWindow("hello")
	require.NoError(t, err)
	ts := httptest.NewServer(NewServer(w.Store(), w.Attach).Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	c, msgs := connect(t, ts)
	defer c.Close()
	w.Send(events.NewWindowActivation(true))
	w.Send(events.NewKey(key.CodeTab, 0))

	for {
		m := next(t, msgs)
		if m.Focus.ID == hello.Button2ID {
			assert.True(t, m.Focus.Has)
			assert.Len(t, m.Nodes, 3)
			break
		}
	}
}
