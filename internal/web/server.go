// Package web implements the HTTP surface of the file server: the index
// page, file delivery, and per-request access logging.
package web

import (
	"net"
	"net/http"

	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/jlabath/mini-server/internal/config"
	"github.com/jlabath/mini-server/internal/contenttype"
)

// Server serves the files rooted at a configured directory.
type Server struct {
	cfg    config.Config
	types  *contenttype.Table
	logger log.Logger
	router *mux.Router
}

// New builds a Server for the given settings. The logger receives one access
// log record per request plus listing diagnostics.
func New(cfg config.Config, types *contenttype.Table, logger log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		types:  types,
		logger: logger,
	}

	r := mux.NewRouter()
	// Raw request paths must reach the traversal check unmodified; cleaning
	// would turn them into redirects before the handler runs.
	r.SkipClean(true)
	r.Use(s.accessLog)
	r.HandleFunc("/", s.handleIndex)
	r.PathPrefix("/").HandlerFunc(s.handleFile)
	s.router = r

	return s
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe binds the configured address and serves requests until the
// listener fails. It only ever returns a non-nil error.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return errors.Wrapf(err, "bind %s", s.cfg.Addr())
	}
	return http.Serve(l, s.router)
}
