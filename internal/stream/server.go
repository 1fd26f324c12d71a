package stream

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/jsosnowski/aubatch/internal/interfaces"
)

// Server exposes the job feed over HTTP/WebSocket and doubles as an
// interfaces.Observer, so a batch.Scheduler can feed it lifecycle events
// directly without knowing anything about WebSockets.
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
	router   *mux.Router
}

// NewServer builds a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.HandleFunc("/healthz", s.handleHealth)
	return s
}

// Handler returns the server's http.Handler, for http.Serve/httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWebSocket upgrades the connection and registers it with the hub.
// A read loop just drains/discards incoming frames to detect client
// disconnects; this feed is one-directional (server → client).
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.hub.Register(conn)

	defer func() {
		s.hub.Unregister(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ObserveSubmit implements interfaces.Observer.
func (s *Server) ObserveSubmit(jobID string) {
	s.hub.Broadcast(Event{Type: EventSubmitted, JobID: jobID, Timestamp: time.Now()})
}

// ObserveCompletion implements interfaces.Observer.
func (s *Server) ObserveCompletion(jobID string, turnaroundNs uint64) {
	s.hub.Broadcast(Event{Type: EventCompleted, JobID: jobID, TurnaroundNs: turnaroundNs, Timestamp: time.Now()})
}

// ObserveRingStall implements interfaces.Observer.
func (s *Server) ObserveRingStall() {
	s.hub.Broadcast(Event{Type: EventRingStalled, Timestamp: time.Now()})
}

// ObserveAdmissionFailure implements interfaces.Observer.
func (s *Server) ObserveAdmissionFailure(jobID string) {
	s.hub.Broadcast(Event{Type: EventAdmissionFailed, JobID: jobID, Timestamp: time.Now()})
}

var _ interfaces.Observer = (*Server)(nil)
