// Package server is the local preview server for a generated site: static
// files with directory index resolution, a tiny JSON API to re-run
// generation, and a websocket that tells connected browsers to reload after
// a successful rebuild.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/petalgen/petal/internal/logging"
)

// Server serves the generated tree and pushes reload events.
type Server struct {
	cfg      Config
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a preview server for cfg.Root.
func New(cfg Config) (*Server, error) {
	if cfg.Root == "" {
		return nil, errors.New("server: empty site root")
	}
	if len(cfg.Ports) == 0 {
		cfg.Ports = DefaultPorts
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("preview")
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
		upgrader: websocket.Upgrader{
			// Local preview only; any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/generate", s.handleGenerate)
	r.Get("/ws", s.handleWS)
	r.NotFound(s.handleStatic)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe walks the port ladder until a listener binds, then serves
// until the process exits.
func (s *Server) ListenAndServe() error {
	for _, port := range s.cfg.Ports {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			s.logger.Warn("port busy", logging.Field{Key: "port", Value: port})
			continue
		}
		s.logger.Info("preview server listening",
			logging.Field{Key: "url", Value: fmt.Sprintf("http://localhost:%d", port)})
		srv := &http.Server{
			Handler:     s,
			ReadTimeout: 15 * time.Second,
		}
		return srv.Serve(ln)
	}
	return fmt.Errorf("no free port in %v", s.cfg.Ports)
}

// handleStatic resolves a request path inside the site root, mapping
// directories to their index.html, and refusing anything that escapes the
// root.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	urlPath := strings.TrimPrefix(r.URL.Path, "/")
	if urlPath == "" {
		urlPath = "index.html"
	}

	dest := filepath.Join(s.cfg.Root, filepath.FromSlash(urlPath))
	rel, err := filepath.Rel(s.cfg.Root, dest)
	if err != nil || strings.HasPrefix(rel, "..") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if st, err := os.Stat(dest); err == nil && st.IsDir() {
		dest = filepath.Join(dest, "index.html")
	}
	if _, err := os.Stat(dest); err != nil {
		http.Error(w, "404 Not Found: "+urlPath, http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, dest)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	clients := len(s.clients)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"root":    s.cfg.Root,
		"clients": clients,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Generate == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "generation not wired"})
		return
	}
	pages, err := s.cfg.Generate()
	if err != nil {
		s.logger.Warn("generation failed", logging.Field{Key: "error", Value: err.Error()})
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.logger.Info("generation triggered via api", logging.Field{Key: "pages", Value: pages})
	s.broadcastReload(pages)
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Read loop just drains until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// broadcastReload tells every connected browser to refresh. Dead
// connections are dropped on write failure.
func (s *Server) broadcastReload(pages int) {
	msg := map[string]any{"event": "reload", "pages": pages}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
