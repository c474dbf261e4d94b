// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the PubMed search flow over HTTP: a landing page,
// a paginated results page, and JSON endpoints for one article's abstract
// and keywords.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/internal/logging"
	"github.com/pdiddy/pubmed-proxy/internal/search"
	"github.com/pdiddy/pubmed-proxy/internal/shape"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Upstream is the subset of *eutils.Client the handlers call.
type Upstream interface {
	search.Backend
	FetchRecordXML(ctx context.Context, id string) (*eutils.Node, error)
}

// Server holds the router and its read-only dependencies.
type Server struct {
	upstream Upstream
	pager    shape.Paginator
	log      *logrus.Logger
	engine   *gin.Engine
}

// New builds a Server. gin's mode is left to the caller.
func New(upstream Upstream, cfg types.SearchConfig, log *logrus.Logger) *Server {
	s := &Server{
		upstream: upstream,
		pager:    shape.NewPaginator(cfg.PageSize),
		log:      log,
	}

	r := gin.New()
	r.Use(logging.Middleware(log), gin.CustomRecovery(s.recovered))
	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"),
	))

	r.GET("/", s.handle(s.index))
	r.GET("/search", s.handle(s.search))
	r.POST("/search", s.handle(s.search))
	r.GET("/abstract/:pubmed_id", s.handle(s.abstract))
	r.GET("/keywords/:pubmed_id", s.handle(s.keywords))
	r.GET("/health", s.handle(s.health))

	s.engine = r
	return s
}

var templateFuncs = template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
	"join": strings.Join,
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler { return s.engine }

// handle adapts a response-returning handler to gin and logs failures with
// their kind.
func (s *Server) handle(h func(c *gin.Context) response) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := h(c)
		if f, ok := resp.(failure); ok {
			s.log.WithFields(logrus.Fields{
				"request_id": logging.RequestID(c),
				"error_kind": kindOf(f.err),
				"error":      f.err.Error(),
			}).Warn("request failed")
		}
		resp.render(c)
	}
}

func (s *Server) recovered(c *gin.Context, v interface{}) {
	s.log.WithFields(logrus.Fields{
		"request_id": logging.RequestID(c),
		"panic":      v,
	}).Error("handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Run serves on cfg.Address until ctx is cancelled, then drains in-flight
// requests for up to cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, cfg types.ServerConfig) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("address", cfg.Address).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down http server")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}
	return nil
}
