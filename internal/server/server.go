// Package server hosts the generated site for local preview. With live
// reload enabled it injects a small WebSocket client into every HTML page
// and reloads browsers whenever the site is rebuilt.
package server

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
)

// Config holds preview server configuration.
type Config struct {
	Dir        string // root of the generated site
	Port       int
	LiveReload bool
}

// Server serves the generated site over HTTP.
type Server struct {
	cfg        Config
	logger     *slog.Logger
	hub        *reloadHub
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server for the site under cfg.Dir. logger may be nil.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		hub:    newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.cfg.LiveReload {
		r.Get("/livereload", s.handleLiveReload)
	}

	r.Get("/*", s.serveSite)

	return r
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Reload tells every connected browser to refresh.
func (s *Server) Reload() {
	s.hub.broadcast("reload")
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("serving site", "addr", addr, "dir", s.cfg.Dir, "livereload", s.cfg.LiveReload)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// serveSite resolves the request against the generated site, mapping
// directory paths like /about to their index.html.
func (s *Server) serveSite(w http.ResponseWriter, r *http.Request) {
	reqPath := path.Clean("/" + r.URL.Path)
	fsPath := filepath.Join(s.cfg.Dir, filepath.FromSlash(reqPath))

	info, err := os.Stat(fsPath)
	if err == nil && info.IsDir() {
		fsPath = filepath.Join(fsPath, "index.html")
	}

	data, err := os.ReadFile(fsPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if s.cfg.LiveReload && strings.HasSuffix(fsPath, ".html") {
		data = injectReloadScript(data)
	}

	if ctype := mime.TypeByExtension(filepath.Ext(fsPath)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Write(data)
}

// reloadScript is injected into HTML pages when live reload is on. It
// refreshes on a broadcast and retries after the server restarts.
const reloadScript = `<script>
(function() {
    var ws = new WebSocket("ws://" + location.host + "/livereload");
    ws.onmessage = function() { location.reload(); };
    ws.onclose = function() {
        setTimeout(function() { location.reload(); }, 1000);
    };
})();
</script>`

// injectReloadScript places the reload client just before </body>, or at the
// end of the document when no body tag exists.
func injectReloadScript(doc []byte) []byte {
	idx := bytes.LastIndex(doc, []byte("</body>"))
	if idx < 0 {
		return append(doc, []byte("\n"+reloadScript+"\n")...)
	}

	var out bytes.Buffer
	out.Grow(len(doc) + len(reloadScript) + 1)
	out.Write(doc[:idx])
	out.WriteString(reloadScript)
	out.WriteString("\n")
	out.Write(doc[idx:])
	return out.Bytes()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleLiveReload(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	s.hub.add(conn)
	defer func() {
		s.hub.remove(conn)
		conn.Close()
	}()

	// Drain client messages until the connection goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", "error", err)
			}
			return
		}
	}
}

// reloadHub tracks the browsers connected for live reload.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *reloadHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

func (h *reloadHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *reloadHub) broadcast(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			c.Close()
			delete(h.conns, c)
		}
	}
}
