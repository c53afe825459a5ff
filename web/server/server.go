// Package server exposes the raymarcher over HTTP: scene renders as PNG
// images plus small JSON endpoints for discovery and health checks.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/rk31/go-sdf-raymarcher/pkg/renderer"
	"github.com/rk31/go-sdf-raymarcher/pkg/scene"
)

// Render size limits keep a single request from monopolizing the host
const (
	defaultWidth  = 640
	defaultHeight = 360
	maxDimension  = 2048
)

// Server handles web requests for the raymarcher
type Server struct {
	port   int
	logger *log.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:   port,
		logger: log.Default(),
	}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Handler()

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Handler builds the route table; split out so tests can drive it directly
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders a scene and responds with the PNG image.
// Query parameters: scene (name), width, height.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("scene")
	if name == "" {
		name = "default"
	}
	selected := scene.ByName(name)
	if selected == nil {
		http.Error(w, fmt.Sprintf("unknown scene %q", name), http.StatusBadRequest)
		return
	}

	width, err := dimensionParam(r, "width", defaultWidth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := dimensionParam(r, "height", defaultHeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rend := renderer.NewRenderer(selected, width, height, renderer.DefaultRenderConfig(), serverLogger{s.logger})

	startTime := time.Now()
	img, stats, err := rend.Render(r.Context())
	if err != nil {
		// Client went away or the render was torn down
		s.logger.Printf("Render of %q aborted: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.Printf("Rendered %q %dx%d in %v (%d hits)",
		name, width, height, time.Since(startTime), stats.HitPixels)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Error encoding PNG: %v", err)
	}
}

// dimensionParam parses a bounded integer dimension from the query string
func dimensionParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	if value <= 0 || value > maxDimension {
		return 0, fmt.Errorf("%s must be in 1..%d, got %d", name, maxDimension, value)
	}
	return value, nil
}

// serverLogger adapts the standard logger to the renderer's Logger interface
type serverLogger struct {
	l *log.Logger
}

func (sl serverLogger) Printf(format string, args ...interface{}) {
	sl.l.Printf(format, args...)
}
