package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"aiatlas/pkg/auth"
	"aiatlas/pkg/logger"
	"aiatlas/pkg/news"
)

// Route prefixes stripped before dispatch. Both are interchangeable: the
// hosted deployment fronts the service under the versioned gateway path
// while local callers use the short one.
var routePrefixes = []string{"/v1/gendao/aiatlas", "/api/aiatlas"}

// Options carries the request-independent dependencies of the HTTP surface.
type Options struct {
	AdminID       string
	AdminPassword string
	// CollectToken authorizes external cron runners on POST /news/collect.
	// Empty disables the header path; the admin bearer always works.
	CollectToken string
	Version      string
	Collector    *news.Collector
}

// Server dispatches the atlas API. All handlers share the single catch-all
// error boundary installed in Handler.
type Server struct {
	opts Options
}

func NewServer(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	return &Server{opts: opts}
}

// Handler builds the routed handler: CORS/OPTIONS short-circuit, path
// normalization, exact-match routes and the panic boundary.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/config", s.handleGetConfig).Methods(http.MethodGet)
	r.HandleFunc("/config", s.handleUpdateConfig).Methods(http.MethodPut)

	r.HandleFunc("/events/public", s.handleGetEventsPublic).Methods(http.MethodGet)
	r.HandleFunc("/timeline", s.handleGetEventsPublic).Methods(http.MethodGet)
	r.HandleFunc("/events", s.handleGetEvents).Methods(http.MethodGet)
	r.HandleFunc("/events", s.handleCreateEvent).Methods(http.MethodPost)
	r.HandleFunc("/events/{id}", s.handleDeleteEvent).Methods(http.MethodDelete)

	r.HandleFunc("/roadmaps", s.handleGetRoadmaps).Methods(http.MethodGet)
	r.HandleFunc("/irreversibles", s.handleGetIrreversibles).Methods(http.MethodGet)
	r.HandleFunc("/outlook", s.handleGetOutlook).Methods(http.MethodGet)
	r.HandleFunc("/governance", s.handleGetGovernance).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleGetStatus).Methods(http.MethodGet)

	r.HandleFunc("/news/latest", s.handleGetNewsLatest).Methods(http.MethodGet)
	r.HandleFunc("/news/collect", s.handleCollectNews).Methods(http.MethodPost)
	r.HandleFunc("/news/script", s.handleGetNewsScript).Methods(http.MethodGet)
	r.HandleFunc("/news", s.handleGetNews).Methods(http.MethodGet)

	// any unmatched (method, path) pair is a 404 echoing the normalized path
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "Not found",
			"path":  r.URL.Path,
		})
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return s.preDispatch(s.recoverPanic(r))
}

// preDispatch handles the CORS preflight short-circuit and normalizes the
// request path before routing.
func (s *Server) preDispatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
			return
		}
		r.URL.Path = NormalizePath(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// recoverPanic is the top-level error boundary: any panic escaping a handler
// becomes a 500 envelope carrying the panic message.
func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler_panic", "path", r.URL.Path, "panic", rec)
				writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// NormalizePath strips one known route prefix and a trailing slash; an empty
// result becomes "/". A prefix only matches on a path boundary, so
// "/api/aiatlasfoo" stays untouched.
func NormalizePath(p string) string {
	for _, prefix := range routePrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			p = strings.TrimPrefix(p, prefix)
			break
		}
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		p = "/"
	}
	return p
}

// requireAdmin writes the fixed 401 envelope and returns false when the
// request lacks a valid admin bearer.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !auth.VerifyRequest(r, s.opts.AdminPassword) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}
