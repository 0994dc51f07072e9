// This file is part of a8input.
//
// a8input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a8input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with a8input.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/logger"
)

// number of frames that can be waiting for the broadcaster
const frameBuffer = 64

// Sentinal error patterns.
const (
	ServeFailed = "monitor: %v"
)

// Monitor implements the input.Observer interface and the http.Handler
// interface.
type Monitor struct {
	hub    *hub
	frames chan input.Frame

	// number of frames passed to Arbitrated()
	arbitrated atomic.Int64

	upgrader websocket.Upgrader

	// the most recently broadcast frame
	mu   sync.Mutex
	last input.Frame
	seq  int64
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	return &Monitor{
		hub:    newHub(),
		frames: make(chan input.Frame, frameBuffer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// the monitor is intended for local use
				return true
			},
		},
		last: input.NewFrame(),
	}
}

// Arbitrated implements the input.Observer interface. It never blocks.
func (m *Monitor) Arbitrated(f input.Frame) {
	m.arbitrated.Add(1)
	select {
	case m.frames <- f:
	default:
	}
}

// Clients returns the number of connected clients.
func (m *Monitor) Clients() int {
	return m.hub.count()
}

// Run the monitor until the context is cancelled. Frames are only broadcast
// while Run() is active.
func (m *Monitor) Run(ctx context.Context) {
	go m.hub.run(ctx)

	for {
		select {
		case f := <-m.frames:
			m.mu.Lock()
			if f == m.last {
				m.mu.Unlock()
				continue
			}
			m.last = f
			m.seq++
			msg := newMessage(MessageFrame, m.seq, m.arbitrated.Load(), f)
			m.mu.Unlock()

			data, err := json.Marshal(msg)
			if err != nil {
				logger.Logf(logger.Allow, "monitor", "%v", err)
				continue
			}
			m.hub.broadcast(data)

		case <-ctx.Done():
			return
		}
	}
}

// ServeHTTP implements the http.Handler interface. The request is upgraded
// to a WebSocket connection.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "upgrade failed: %v", err)
		return
	}

	c := newClient(m.hub, conn)

	// the current state is queued before the client is registered so that
	// it is always the first message
	m.mu.Lock()
	m.seq++
	msg := newMessage(MessageFull, m.seq, m.arbitrated.Load(), m.last)
	m.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "%v", err)
		conn.Close()
		return
	}
	c.send <- data

	if !m.hub.add(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// ListenAndServe serves the monitor on the address until the context is
// cancelled. WebSocket connections are accepted on the /ws path.
func (m *Monitor) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", m)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logger.Logf(logger.Allow, "monitor", "listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return curated.Errorf(ServeFailed, err)
	}
	return nil
}
