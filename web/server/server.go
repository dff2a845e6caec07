package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Size and sampling limits accepted by the API
const (
	minImageSize = 1
	maxImageSize = 2000
	maxBeamSize  = 32
	maxDepth     = 50
)

// Server handles web requests for the recursive raytracer
type Server struct {
	port     int
	mux      *http.ServeMux
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return s
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Built-in scene id
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	Beam     int    `json:"beam"`     // Aperture beam size
	Adaptive bool   `json:"adaptive"` // Adaptive super-sampling
	MaxDepth int    `json:"maxDepth"` // Maximum recursion depth
}

// RenderResponse carries the finished image and its statistics
type RenderResponse struct {
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	ElapsedMs int64            `json:"elapsedMs"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListBuiltinScenes())
}

// handleRender renders a scene synchronously and returns it as base64 PNG.
// The render stops when the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneObj, req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	camera, err := sceneObj.NewCamera()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = req.MaxDepth
	integ := integrator.NewRecursiveIntegrator(sceneObj, integratorConfig)

	config := renderer.DefaultRenderConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.SuperSampling = renderer.SuperSamplingConfig{BeamSize: req.Beam, Adaptive: req.Adaptive}

	logger := NewWebLogger(fmt.Sprintf("render-%d", s.renderID.Add(1)))
	raytracer, err := renderer.NewRaytracer(integ, camera, config, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	sink := renderer.NewImageSink(req.Width, req.Height, 1)
	stats, err := raytracer.Render(r.Context(), sink)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Render aborted: "+err.Error())
		return
	}

	imageData, err := s.imageToBase64PNG(sink.Image())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:    stats.TotalPixels,
			TotalSamples:   stats.TotalSamples,
			AverageSamples: stats.AverageSamples,
			MinSamples:     stats.MinSamples,
			MaxSamplesUsed: stats.MaxSamplesUsed,
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
		Console:   logger.Messages(),
	})
}

// parseRenderRequest resolves the scene and fills unset parameters from its sampling defaults
func (s *Server) parseRenderRequest(r *http.Request) (*scene.Scene, *RenderRequest, error) {
	values := r.URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, nil, err
	}
	defaults := sceneObj.SamplingConfig

	if req.Width, err = parseIntParam(values, "width", defaults.Width, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaults.Height, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if req.Beam, err = parseIntParam(values, "beam", defaults.BeamSize, 1, maxBeamSize); err != nil {
		return nil, nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", integrator.DefaultConfig().MaxDepth, 1, maxDepth); err != nil {
		return nil, nil, err
	}
	req.Adaptive = defaults.Adaptive
	if value := values.Get("adaptive"); value != "" {
		if req.Adaptive, err = strconv.ParseBool(value); err != nil {
			return nil, nil, fmt.Errorf("invalid adaptive: %s", value)
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Beam > 8 {
		log.Printf("Render warning: Large image with a wide beam may render slowly")
	}

	return sceneObj, req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.SamplingConfig
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene": sceneName,
		"name":  sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"beam":     config.BeamSize,
			"adaptive": config.Adaptive,
			"maxDepth": integrator.DefaultConfig().MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"beam":     map[string]int{"min": 1, "max": maxBeamSize},
			"maxDepth": map[string]int{"min": 1, "max": maxDepth},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
