// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     remote
// Description: HTTP server with the WebSocket board console and /healthz
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/pkg/core/health"
	"github.com/msto63/pawnboard/pkg/core/version"
)

// Config holds server configuration
type Config struct {
	Host string
	Port int
	// ReadTimeout closes a connection that sends nothing for this long
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxMessageBytes int64
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8088,
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		MaxMessageBytes: 4096,
	}
}

// Address returns host:port
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Server serves one independent board per WebSocket connection
type Server struct {
	config   Config
	logger   *mdwlog.Logger
	upgrader websocket.Upgrader
	health   *health.Registry

	mu       sync.Mutex
	sessions map[*websocket.Conn]string
	closing  bool
	wg       sync.WaitGroup
}

// New creates a new server. An empty host or port falls back to
// DefaultConfig, a nil logger to the foundation default.
func New(cfg Config, logger *mdwlog.Logger) *Server {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	defaults := DefaultConfig()
	if cfg.Host == "" {
		cfg.Host = defaults.Host
	}
	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}

	s := &Server{
		config: cfg,
		logger: logger.WithName("remote"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for local use
			},
		},
		health:   health.NewRegistry("pawnboard-remote", version.Remote),
		sessions: make(map[*websocket.Conn]string),
	}

	s.health.RegisterFunc("sessions", func(ctx context.Context) health.CheckResult {
		s.mu.Lock()
		defer s.mu.Unlock()

		result := health.CheckResult{
			Status:  health.StatusHealthy,
			Details: map[string]interface{}{"active": len(s.sessions)},
		}
		if s.closing {
			result.Status = health.StatusUnhealthy
			result.Message = "shutting down"
		}
		return result
	})

	return s
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.Handle("/healthz", s.health.Handler())
	return loggingMiddleware(s.logger, mux)
}

// ListenAndServe serves on the configured address until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then closes all
// open sessions and waits for them to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("Starting remote board console", mdwlog.Fields{
		"address": ln.Addr().String(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.ErrorWithErr("Remote board console failed", err)
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping remote board console")
	s.beginShutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)
	s.closeSessions()
	s.wg.Wait()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Sessions returns the number of open connections
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	closing := s.closing
	s.mu.Unlock()
	if closing {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}

	sess := newSession(s, conn)
	if !s.track(conn, sess.id) {
		conn.Close()
		return
	}

	defer s.untrack(conn)

	sess.run()
}

func (s *Server) track(conn *websocket.Conn, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.sessions[conn] = id
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, conn)
	s.wg.Done()
}

// beginShutdown marks the server unhealthy and refuses new sessions
func (s *Server) beginShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
}

// closeSessions sends a close frame to every open connection. The read
// loops then return and the sessions untrack themselves.
func (s *Server) closeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
	for conn := range s.sessions {
		conn.WriteControl(websocket.CloseMessage, msg, deadline)
		conn.Close()
	}
}

// loggingMiddleware adds request logging at debug level
func loggingMiddleware(logger *mdwlog.Logger, next http.Handler) http.Handler {
	if !logger.IsLevelEnabled(mdwlog.LevelDebug) {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("HTTP request", mdwlog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}
