// Package remote exposes the viewer over a websocket: state snapshots are
// broadcast to every client and client commands are queued for the frame loop.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/headset-viewer/internal/viewer"
)

// DefaultInterval is the minimum spacing between two broadcasts.
const DefaultInterval = 100 * time.Millisecond

// DefaultWriteTimeout bounds a single write so a stalled client cannot hold up
// the frame loop for long.
const DefaultWriteTimeout = 200 * time.Millisecond

const commandBuffer = 64

// Server is the websocket bridge. Publish and Drain are called from the frame
// loop; connections are served on their own goroutines.
type Server struct {
	// Interval is the minimum time between broadcasts.
	Interval time.Duration
	// WriteTimeout is the deadline for each write; a client that misses it is dropped.
	WriteTimeout time.Duration

	log      *zap.Logger
	upgrader websocket.Upgrader
	commands chan Command

	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	last     []byte
	lastSent time.Time
}

// NewServer creates a bridge with no clients.
func NewServer(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Interval:     DefaultInterval,
		WriteTimeout: DefaultWriteTimeout,
		log:          log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		commands: make(chan Command, commandBuffer),
		clients:  make(map[*websocket.Conn]bool),
	}
}

// Handler returns the HTTP handler serving the websocket on /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("remote bridge listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	s.Close()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("remote: serve %s: %w", addr, err)
	}
	return nil
}

// Publish broadcasts snap if it differs from the last broadcast and the
// interval has passed. A skipped change goes out on a later call.
func (s *Server) Publish(snap viewer.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("marshal snapshot", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bytes.Equal(data, s.last) {
		return
	}
	now := time.Now()
	if s.last != nil && now.Sub(s.lastSent) < s.Interval {
		return
	}
	s.last = data
	s.lastSent = now

	for conn := range s.clients {
		if err := s.write(conn, data); err != nil {
			s.log.Warn("websocket write failed", zap.String("client", conn.RemoteAddr().String()), zap.Error(err))
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) write(conn *websocket.Conn, data []byte) error {
	if s.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.WriteTimeout)); err != nil {
			return err
		}
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// Drain applies every queued command to t and returns how many ran.
func (s *Server) Drain(t Triggers) int {
	n := 0
	for {
		select {
		case cmd := <-s.commands:
			if err := cmd.Apply(t); err != nil {
				s.log.Warn("remote command rejected", zap.Error(err))
				continue
			}
			n++
		default:
			return n
		}
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close disconnects every client.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	addr := conn.RemoteAddr().String()

	s.mu.Lock()
	s.clients[conn] = true
	if s.last != nil {
		if err := s.write(conn, s.last); err != nil {
			s.log.Warn("websocket write failed", zap.String("client", addr), zap.Error(err))
		}
	}
	s.mu.Unlock()

	s.log.Info("remote client connected", zap.String("client", addr))

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
		s.log.Info("remote client disconnected", zap.String("client", addr))
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			s.log.Warn("malformed remote command", zap.String("client", addr), zap.Error(err))
			continue
		}
		select {
		case s.commands <- cmd:
		default:
			s.log.Warn("remote command queue full, dropping", zap.String("action", string(cmd.Action)))
		}
	}
}
