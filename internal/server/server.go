package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/mpaiva/sunplot/pkg/render"
	"github.com/mpaiva/sunplot/pkg/simulate"
	"github.com/mpaiva/sunplot/pkg/spec"
	"github.com/mpaiva/sunplot/pkg/stats"
	"github.com/mpaiva/sunplot/pkg/validation"
)

// Options are the server settings, overridable from the environment with the
// SUNPLOT_ prefix (SUNPLOT_PORT, SUNPLOT_HOST). A .env file in the working
// directory is loaded first when present.
type Options struct {
	Host string `envconfig:"HOST" default:""`
	Port int    `envconfig:"PORT" default:"3000"`
}

// LoadOptions resolves server options from .env and the environment.
func LoadOptions() (Options, error) {
	_ = godotenv.Load() // optional

	var opts Options
	if err := envconfig.Process("sunplot", &opts); err != nil {
		return opts, fmt.Errorf("reading server environment: %w", err)
	}
	return opts, nil
}

// Server is the local development server for interactive site analysis.
type Server struct {
	projectPath string
	opts        Options

	mu   sync.RWMutex
	last *runRecord
}

// runRecord is one completed simulation, stamped with a run ID so exports
// and the UI can tell results apart.
type runRecord struct {
	ID          string           `json:"id"`
	StartedAt   time.Time        `json:"started_at"`
	DurationSec float64          `json:"duration_sec"`
	Result      *simulate.Result `json:"result"`
}

// New creates a server for the given project directory.
func New(projectPath string, opts Options) *Server {
	return &Server{
		projectPath: projectPath,
		opts:        opts,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/spec", requireMethod(http.MethodGet, s.handleSpec))
	mux.HandleFunc("/api/validation", requireMethod(http.MethodGet, s.handleValidation))
	mux.HandleFunc("/api/simulate", requireMethod(http.MethodPost, s.handleSimulate))
	mux.HandleFunc("/api/result", requireMethod(http.MethodGet, s.handleResult))
	mux.HandleFunc("/api/stats", requireMethod(http.MethodGet, s.handleStats))
	mux.HandleFunc("/api/heatmap.png", requireMethod(http.MethodGet, s.handleHeatmap))
	mux.HandleFunc("/", requireMethod(http.MethodGet, s.handleIndex))

	return mux
}

// requireMethod enforces the HTTP method for a route, matching the behavior
// of Go 1.22+ "METHOD /path" mux patterns on the Go 1.21 toolchain.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method && !(method == http.MethodGet && r.Method == http.MethodHead) {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	log.Printf("sunplot server starting on http://localhost:%d", s.opts.Port)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>sunplot</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>sunplot</h1>
<p>POST /api/simulate to run an analysis, then GET /api/result or /api/heatmap.png.</p>
</div>
</body></html>`)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	siteSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, siteSpec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	siteSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	report := validation.ValidateSchema(siteSpec)
	if report.Valid {
		_, geomReport := stats.ResolveGeometry(siteSpec)
		report.Merge(geomReport)
	}
	writeJSON(w, report)
}

// simulateRequest selects the window: a single date, a date range, or a
// whole year (annual daily-average mode).
type simulateRequest struct {
	Date  string `json:"date,omitempty"`  // YYYY-MM-DD
	Start string `json:"start,omitempty"` // YYYY-MM-DD
	End   string `json:"end,omitempty"`   // YYYY-MM-DD
	Year  int    `json:"year,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	siteSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	loc, err := time.LoadLocation(siteSpec.Location.Timezone)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("loading timezone: %w", err))
		return
	}

	window, err := windowFromRequest(req, loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	started := time.Now()
	result, err := simulate.Run(r.Context(), siteSpec, window)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	rec := &runRecord{
		ID:          uuid.NewString(),
		StartedAt:   started,
		DurationSec: time.Since(started).Seconds(),
		Result:      result,
	}

	s.mu.Lock()
	s.last = rec
	s.mu.Unlock()

	log.Printf("run %s: %d points, %d days, %.1fs", rec.ID, len(result.Points), result.DaysProcessed, rec.DurationSec)
	writeJSON(w, rec)
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	rec := s.last
	s.mu.RUnlock()

	if rec == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no simulation has been run yet"))
		return
	}
	writeJSON(w, rec)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	rec := s.last
	s.mu.RUnlock()

	if rec == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no simulation has been run yet"))
		return
	}

	siteSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, stats.Summarize(rec.Result, siteSpec))
}

func (s *Server) handleHeatmap(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	rec := s.last
	s.mu.RUnlock()

	if rec == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no simulation has been run yet"))
		return
	}

	siteSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.WriteHeatmapPNG(w, rec.Result, siteSpec.Scene.RadiusM); err != nil {
		log.Printf("heatmap render failed: %v", err)
	}
}

func windowFromRequest(req simulateRequest, loc *time.Location) (simulate.Window, error) {
	switch {
	case req.Year != 0:
		return simulate.Year(req.Year, loc), nil
	case req.Start != "" && req.End != "":
		start, err := time.ParseInLocation("2006-01-02", req.Start, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing start date: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02", req.End, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing end date: %w", err)
		}
		return simulate.Window{Start: start, End: end}, nil
	case req.Date != "":
		date, err := time.ParseInLocation("2006-01-02", req.Date, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing date: %w", err)
		}
		return simulate.SingleDay(date), nil
	default:
		return simulate.Window{}, fmt.Errorf("request must set date, start/end, or year")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
