// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge serves the accessibility tree of a window to
// out-of-process consumers such as screen readers, over HTTP and
// WebSocket. A consumer pulls the current snapshot with GET /tree
// or GET /focus, or connects to /ws to receive the snapshot and then
// every change of it, as a JSON [Message]. A connected WebSocket
// consumer is attached to the window for as long as it is connected.
package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/access/base/errors"
	"cogentcore.org/access/store"
	"github.com/gorilla/websocket"
)

// Server is the accessibility bridge of one window.
type Server struct {
	store  *store.Store
	attach func() (detach func())

	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[chan store.Snapshot]struct{}
}

// NewServer returns a new [Server] that serves the given store, and
// calls the given attach function when a WebSocket consumer connects,
// typically [window.Window.Attach]. If attach is nil,
// [store.Store.Attach] is used.
func NewServer(st *store.Store, attach func() (detach func())) *Server {
	if attach == nil {
		attach = st.Attach
	}
	sv := &Server{store: st, attach: attach, subs: map[chan store.Snapshot]struct{}{}}
	st.OnApply(sv.publish)
	return sv
}

// Handler returns the HTTP handler of the bridge.
func (sv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tree", sv.serveTree)
	mux.HandleFunc("GET /focus", sv.serveFocus)
	mux.HandleFunc("GET /ws", sv.serveWS)
	return mux
}

// Consumers returns the number of connected WebSocket consumers.
func (sv *Server) Consumers() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return len(sv.subs)
}

// serveTree writes the current snapshot as JSON, or as
// YAML with ?format=yaml.
func (sv *Server) serveTree(w http.ResponseWriter, r *http.Request) {
	snap := sv.store.Tree()
	if r.URL.Query().Get("format") == "yaml" {
		w.Header().Set("Content-Type", "application/yaml")
		errors.Log(snap.WriteYAML(w))
		return
	}
	writeJSON(w, NewMessage(snap))
}

func (sv *Server) serveFocus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, NewFocus(sv.store.Focus()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	errors.Log(json.NewEncoder(w).Encode(v))
}

func (sv *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()

	ch := sv.subscribe()
	defer sv.unsubscribe(ch)
	detach := sv.attach()
	defer detach()
	slog.Debug("bridge: consumer connected", "remote", r.RemoteAddr)

	// the consumer only sends the close message, which ends the reads
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snap := sv.store.Tree()
	for {
		if err := conn.WriteJSON(NewMessage(snap)); err != nil {
			slog.Debug("bridge: write failed", "remote", r.RemoteAddr, "err", err)
			return
		}
		select {
		case snap = <-ch:
		case <-closed:
			slog.Debug("bridge: consumer disconnected", "remote", r.RemoteAddr)
			return
		case <-r.Context().Done():
			return
		}
	}
}

// subscribe returns a channel that receives the latest snapshot after
// each change. A slow consumer skips intermediate snapshots.
func (sv *Server) subscribe() chan store.Snapshot {
	ch := make(chan store.Snapshot, 1)
	sv.mu.Lock()
	sv.subs[ch] = struct{}{}
	sv.mu.Unlock()
	return ch
}

func (sv *Server) unsubscribe(ch chan store.Snapshot) {
	sv.mu.Lock()
	delete(sv.subs, ch)
	sv.mu.Unlock()
}

// publish sends the given snapshot to all subscribers,
// replacing any snapshot they have not yet received.
func (sv *Server) publish(snap store.Snapshot) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for ch := range sv.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
