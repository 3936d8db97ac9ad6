// Package introspection is an optional, strictly read-only HTTP
// surface over a running Context: current simulated time, plan and
// immediate queue depth, initialized container tags, and per-event
// subscriber counts. Starting it never changes scheduling; it reads
// the context only through the same public accessors any component
// would use, and it has no write endpoints.
package introspection

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jasonasher/eosim"
)

// Server exposes a Context's read-only accessors over HTTP.
type Server struct {
	ctx    *eosim.Context
	router chi.Router
	logger eosim.Logger
}

// NewServer builds a Server over ctx. logger is stored on the Server
// and may be nil; the Server performs no request logging.
func NewServer(ctx *eosim.Context, logger eosim.Logger) *Server {
	s := &Server{ctx: ctx, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/status", s.handleStatus)
	r.Get("/containers", s.handleContainers)
	r.Get("/subscribers", s.handleSubscribers)
	s.router = r

	return s
}

// ServeHTTP lets Server be used directly as an http.Handler, e.g. with
// http.ListenAndServe(addr, server).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusResponse struct {
	Now                   eosim.Time `json:"now"`
	PendingPlanCount      int        `json:"pendingPlanCount"`
	PendingImmediateCount int        `json:"pendingImmediateCount"`
	Halted                bool       `json:"halted"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, statusResponse{
		Now:                   s.ctx.Now(),
		PendingPlanCount:      s.ctx.PendingPlanCount(),
		PendingImmediateCount: s.ctx.PendingImmediateCount(),
		Halted:                s.ctx.Halted(),
	})
}

func (s *Server) handleContainers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.ctx.ContainerTags())
}

func (s *Server) handleSubscribers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.ctx.SubscriberCounts())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
