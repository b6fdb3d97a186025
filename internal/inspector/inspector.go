// Package inspector serves a read-only websocket debug feed of the live
// circuit: connected dev tools receive periodic JSON snapshots of button
// states, gate outputs, LEDs and wires.
//
// Threading: the engine goroutine hands finished snapshots to Publish;
// the broadcaster goroutine fans the latest one out to clients. The
// circuit graph itself is never touched off the frame loop.
package inspector

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/circuitplay/circuitplay/internal/core/circuit"
	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is a localhost dev tool; no origin policy.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Frame is one message on the feed.
type Frame struct {
	Level    string           `json:"level"`
	Frame    uint64           `json:"frame"`
	Snapshot circuit.Snapshot `json:"snapshot"`
}

type client struct {
	id   string
	conn *websocket.Conn
}

// Server broadcasts circuit snapshots over websocket.
type Server struct {
	settings config.InspectorSettings
	log      log.Log

	mu        sync.Mutex
	latest    Frame
	published bool
	dirty     bool
	clients   map[string]*client

	httpServer *http.Server
}

// New creates an inspector server; it does nothing until Start.
func New(settings config.InspectorSettings, logger log.Log) *Server {
	return &Server{
		settings: settings,
		log:      logger.With(log.String("system", "inspector")),
		clients:  make(map[string]*client),
	}
}

// Publish stores the newest frame for broadcast. Called by the engine
// goroutine once per frame; cheap when nobody is connected.
func (s *Server) Publish(level string, frameNo uint64, snap circuit.Snapshot) {
	s.mu.Lock()
	s.latest = Frame{Level: level, Frame: frameNo, Snapshot: snap}
	s.published = true
	s.dirty = true
	s.mu.Unlock()
}

// Handler returns the websocket endpoint, exposed separately so tests
// can mount it on a test server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start listens on the configured address and begins broadcasting.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.settings.Addr,
		Handler: s.Handler(),
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("inspector listener failed", log.Err(err))
		}
	}()
	go s.broadcastLoop(ctx)

	s.log.Info("inspector listening", log.String("addr", s.settings.Addr))
	return nil
}

// Stop shuts the listener down and drops all clients.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	err := s.httpServer.Shutdown(ctx)

	s.mu.Lock()
	for _, c := range s.clients {
		c.conn.Close()
	}
	s.clients = make(map[string]*client)
	s.mu.Unlock()
	return err
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", log.Err(err))
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}

	// Send the latest frame before joining the broadcast set, so the
	// initial write cannot interleave with a broadcast write.
	s.mu.Lock()
	initial, hasFrame := s.latest, s.published
	s.mu.Unlock()
	if hasFrame {
		_ = conn.WriteJSON(initial)
	}

	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()

	s.log.Info("inspector client connected",
		log.String("client", c.id),
		log.String("remote", conn.RemoteAddr().String()))

	// Drain (and ignore) client messages so pings and close frames are
	// processed; the feed is one-way.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(c)
				return
			}
		}
	}()
}

func (s *Server) broadcastLoop(ctx context.Context) {
	interval := time.Duration(s.settings.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.broadcast()
		}
	}
}

func (s *Server) broadcast() {
	s.mu.Lock()
	if !s.dirty || len(s.clients) == 0 {
		s.mu.Unlock()
		return
	}
	frame := s.latest
	s.dirty = false
	targets := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	for _, c := range targets {
		if err := c.conn.WriteJSON(frame); err != nil {
			s.drop(c)
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c.id]; ok {
		delete(s.clients, c.id)
		c.conn.Close()
	}
	s.mu.Unlock()
	s.log.Info("inspector client disconnected", log.String("client", c.id))
}
