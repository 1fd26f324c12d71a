// Package stream provides a live job-feed WebSocket server: an
// interfaces.Observer implementation that fans job lifecycle events out
// to every connected browser, ambient tooling for watching a batch run
// rather than a scored feature.
package stream

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EventType names the kind of job lifecycle event a client receives.
type EventType string

const (
	EventSubmitted         EventType = "submitted"
	EventCompleted         EventType = "completed"
	EventRingStalled       EventType = "ring_stalled"
	EventAdmissionFailed   EventType = "admission_failed"
)

// Event is one job lifecycle notification broadcast to every subscriber.
type Event struct {
	Type         EventType `json:"type"`
	JobID        string    `json:"job_id,omitempty"`
	TurnaroundNs uint64    `json:"turnaround_ns,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Hub tracks connected WebSocket clients and fans out events to all of
// them, grounded on the teacher's WebSocketServer's per-connection
// goroutine shape but restructured around a single shared broadcast
// instead of one subscription-per-stream-type.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Register adds conn to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister removes conn from the broadcast set.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Broadcast writes ev to every connected client, dropping (and
// unregistering) any connection whose write fails.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
