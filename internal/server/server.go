// Package server exposes quotation generation over HTTP.
package server

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf"
)

// Defaults applied by New to zero Config fields.
const (
	DefaultMaxBodyBytes = 1 << 20
	DefaultPublicDir    = "public"
	publicPrefix        = "/public"
)

// Templates lists template bundles for the /templates endpoint.
type Templates interface {
	Reload() error
	List() []quotepdf.TemplateInfo
	Default() string
}

// Compile-time interface check.
var _ Templates = (*quotepdf.Registry)(nil)

// Config holds the HTTP-facing settings.
type Config struct {
	PublicDir    string // generated files, served under /public
	PublicURL    string // prefix of returned file URLs; empty derives it from the request
	MaxBodyBytes int64
}

// Server holds the handlers' dependencies.
type Server struct {
	gen     *quotepdf.Generator
	tpl     Templates
	cfg     Config
	log     zerolog.Logger
	started time.Time
	now     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithClock sets the time source for uptime.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Server.
func New(gen *quotepdf.Generator, tpl Templates, cfg Config, opts ...Option) *Server {
	s := &Server{gen: gen, tpl: tpl, cfg: cfg, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.MaxBodyBytes <= 0 {
		s.cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if s.cfg.PublicDir == "" {
		s.cfg.PublicDir = DefaultPublicDir
	}
	s.cfg.PublicURL = strings.TrimRight(s.cfg.PublicURL, "/")
	s.started = s.now()
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/templates", s.templates)
	r.Post("/generate-quotation", s.generateFile)
	r.Post("/generate-quotation/pdf", s.generatePDF)

	files := http.StripPrefix(publicPrefix, http.FileServer(filesOnly{http.Dir(s.cfg.PublicDir)}))
	r.Get(publicPrefix+"/*", files.ServeHTTP)

	return r
}

// filesOnly hides directories so generated quotations cannot be listed.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down,
// giving in-flight requests up to grace to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutdown signal received")
	if grace <= 0 {
		grace = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("server stopped")
	return nil
}
