// Package console exposes a minimal read-only HTTP surface over the
// crawler core: job/loop status and C7 relevance search. Adapted from the
// teacher's console package (the Route-table-plus-unrolled/render
// rendering shape, gorilla/mux for path variables) with the write-side
// REST and HTML-dashboard controllers dropped — SPEC_FULL.md scopes this
// surface to status and search only, so the teacher's add/recrawl/segment
// controllers and its gorilla/sessions-backed login flow have no
// equivalent operation to serve. See DESIGN.md.
package console

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/ktheindifferent/crawlerd/internal/logging"
	"github.com/ktheindifferent/crawlerd/internal/retrieval"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

// Loop is the subset of *service.Loop the console reports on.
type Loop interface {
	Status() string
}

// Server serves the read-only status/search HTTP API.
type Server struct {
	Store  store.Store
	Loop   Loop
	render *render.Render
	log    logging.Logger
}

// New builds a Server backed by s and l.
func New(s store.Store, l Loop) *Server {
	return &Server{
		Store:  s,
		Loop:   l,
		render: render.New(render.Options{IndentJSON: true}),
		log:    logging.Default(),
	}
}

// Router builds the gorilla/mux router for this server's routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{oid}", s.handleGetJob).Methods(http.MethodGet)
	r.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	return r
}

type statusResponse struct {
	Loop string `json:"loop"`
}

func (s *Server) handleStatus(w http.ResponseWriter, req *http.Request) {
	s.render.JSON(w, http.StatusOK, statusResponse{Loop: s.Loop.Status()})
}

func (s *Server) handleGetJob(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	job, err := s.Store.GetJob(req.Context(), vars["oid"])
	if err == store.ErrNotFound {
		s.render.JSON(w, http.StatusNotFound, errorResponse{Message: "job not found"})
		return
	}
	if err != nil {
		s.log.Errorf("console: getting job %s: %v", vars["oid"], err)
		s.render.JSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
		return
	}
	s.render.JSON(w, http.StatusOK, job)
}

type errorResponse struct {
	Message string `json:"message"`
}

type searchResult struct {
	URL    string   `json:"url"`
	Score  int      `json:"score"`
	Tokens []string `json:"tokens"` // first 20 tokens, per spec.md §6
}

func (s *Server) handleSearch(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")
	limit := 20
	if raw := req.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	scored := retrieval.QueryByRelevance(req.Context(), s.Store, q, limit)
	out := make([]searchResult, 0, len(scored))
	for _, sc := range scored {
		out = append(out, searchResult{URL: sc.Page.URL, Score: sc.Score, Tokens: sc.DisplayTokens()})
	}
	s.render.JSON(w, http.StatusOK, out)
}

// ListenAndServe starts the HTTP server on addr, stopping when ctx is
// canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		return err
	}
}
