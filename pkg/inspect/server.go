package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Server serves a Registry over HTTP. Mount its Handler on any router:
//
//	reg := inspect.NewRegistry()
//	reg.Register(count)
//	http.ListenAndServe("localhost:6061", inspect.NewServer(reg).Handler())
//
// The inspector is a debug surface; bind it to localhost or put it
// behind auth middleware before exposing it.
type Server struct {
	registry *Registry
	upgrader websocket.Upgrader
}

// NewServer creates an inspector over the given registry.
func NewServer(registry *Registry) *Server {
	return &Server{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns the inspector's routes:
//
//	GET /cells         JSON snapshot of all registered cells
//	GET /cells/{name}  single cell value
//	GET /ws            WebSocket stream of change events
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/cells", s.handleSnapshot)
	r.Get("/cells/{name}", s.handleCell)
	r.Get("/ws", s.handleStream)
	return r
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshot())
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	c, ok := s.registry.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown cell: " + name})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cell": name, "value": c.GetAny()})
}

// changeEvent is one streamed change notification.
type changeEvent struct {
	Cell  string `json:"cell"`
	Value any    `json:"value"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	// Cell notifications run synchronously on the writer's goroutine, so
	// the watch callback must never block: events go through a buffered
	// channel and are dropped on overflow rather than stalling a Set.
	events := make(chan changeEvent, 64)
	unwatch := s.registry.watchAll(func(name string, value any) {
		select {
		case events <- changeEvent{Cell: name, Value: value}:
		default:
		}
	})
	defer unwatch()

	// Subscriptions are in place before the upgrade completes, so a
	// client never misses a change made after its dial returns.
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev := <-events:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
