package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gantry-run/gantry/internal/observability"
	"github.com/gantry-run/gantry/pkg/awserr"
)

// Server exposes the error-fixture API that AWS-SDK-compatible clients are
// pointed at during integration tests. Every error body on this surface is
// rendered through the awserr catalog, so clients exercise the exact wire
// shape the real control plane would produce.
type Server struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHandler creates the HTTP handler for the fixture server.
func NewHandler(logger *slog.Logger, metrics *observability.Metrics) http.Handler {
	s := &Server{
		logger:  logger,
		metrics: metrics,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.instrument)
	r.Use(s.recoverer)

	r.Get("/health", s.GetHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/error-responses", s.ListErrorResponses)
	r.Post("/error-responses/{kind}", s.RenderErrorResponse)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.notFound)

	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// kindSpec is the listing shape for one catalog entry.
type kindSpec struct {
	Kind         string   `json:"kind"`
	HTTPStatus   int      `json:"httpStatus"`
	MessageField string   `json:"messageField"`
	IncludeType  bool     `json:"includeType"`
	ExtraFields  []string `json:"extraFields,omitempty"`
}

// ListErrorResponses handles the GET /error-responses request. It describes
// the catalog so test harnesses can discover the fixture surface.
func (s *Server) ListErrorResponses(w http.ResponseWriter, r *http.Request) {
	kinds := awserr.Kinds()
	out := make([]kindSpec, 0, len(kinds))
	for _, kind := range kinds {
		spec, _ := awserr.Spec(kind)
		out = append(out, kindSpec{
			Kind:         string(kind),
			HTTPStatus:   spec.HTTPStatus,
			MessageField: spec.MessageField,
			IncludeType:  spec.IncludeType,
			ExtraFields:  spec.ExtraFields,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// renderRequest is the POST /error-responses/{kind} body.
type renderRequest struct {
	Message string            `json:"message"`
	Extra   map[string]string `json:"extra"`
}

// RenderErrorResponse handles the POST /error-responses/{kind} request: it
// replies with the canonical error response for the requested kind.
func (s *Server) RenderErrorResponse(w http.ResponseWriter, r *http.Request) {
	kind := awserr.Kind(chi.URLParam(r, "kind"))

	var req renderRequest
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeCatalogError(w, awserr.InvalidParameterValue,
			fmt.Sprintf("Failed to read request body: %v", err), nil)
		return
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			s.writeCatalogError(w, awserr.InvalidParameterValue,
				fmt.Sprintf("Invalid JSON in request body: %v", err), nil)
			return
		}
	}

	status, body, err := awserr.Render(kind, req.Message, req.Extra)
	if err != nil {
		// The kind and extras arrived over the wire, so catalog misuse is a
		// client error here, not a ConfigurationError.
		if cfg, ok := err.(*awserr.ConfigurationError); ok && cfg.Field != "" {
			s.writeCatalogError(w, awserr.InvalidParameterValue,
				fmt.Sprintf("Missing required extra field: %s", cfg.Field), nil)
			return
		}
		s.writeCatalogError(w, awserr.InvalidParameterValue,
			fmt.Sprintf("Unknown exception kind %q (valid kinds: %s)", kind, kindNames()), nil)
		return
	}

	s.writeBody(w, kind, status, body)
}

// notFound renders the catalog's ResourceNotFound response for unmatched
// routes, mirroring the control plane's unknown-route behavior.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeCatalogError(w, awserr.ResourceNotFound,
		fmt.Sprintf("Unknown path pattern: %s %s", r.Method, r.URL.Path), nil)
}

// writeCatalogError renders kind through the catalog and writes it. The kind
// must be a known catalog member; a render failure here is a bug.
func (s *Server) writeCatalogError(w http.ResponseWriter, kind awserr.Kind, message string, extra map[string]string) {
	status, body, err := awserr.Render(kind, message, extra)
	if err != nil {
		s.logger.Error("catalog misuse", "err", err, "kind", string(kind))
		kind = awserr.Service
		status, body, _ = awserr.Render(kind, "Internal error rendering error response", nil)
	}
	s.writeBody(w, kind, status, body)
}

// writeBody writes a rendered catalog body and records the metric.
func (s *Server) writeBody(w http.ResponseWriter, kind awserr.Kind, status int, body awserr.Body) {
	raw, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("error body encode failed", "err", err)
		http.Error(w, "encode failure", http.StatusInternalServerError)
		return
	}

	s.metrics.ErrorResponses.WithLabelValues(string(kind), strconv.Itoa(status)).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// requestID tags every request with a request ID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// instrument logs the request and records the request counter.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
		s.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"request_id", ww.Header().Get("X-Request-Id"),
		)
	})
}

// recoverer converts handler panics into the ServiceException wire shape.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "err", rec, "path", r.URL.Path)
				s.writeCatalogError(w, awserr.Service, fmt.Sprint(rec), nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func kindNames() string {
	kinds := awserr.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
