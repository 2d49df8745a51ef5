package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"worthit/internal/platform/config"
	perr "worthit/internal/platform/errors"
	"worthit/internal/platform/logger"
	lumnet "worthit/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

// Server serves a chi mux on PORT until its context ends
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer reads PORT, READ_HEADER_TIMEOUT and SHUTDOWN_GRACE from cfg
// opts run against the mux before anything else is mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.Newf(perr.ErrorCodeNotFound, "no route for %s", r.URL.Path))
	})
	m.MethodNotAllowed(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		_, env := ErrorEnvelope(perr.Newf(perr.ErrorCodeValidation, "%s is not allowed on %s", r.Method, r.URL.Path),
			lumnet.RequestID(r.Context()))
		env.StatusCode, env.Status = stdhttp.StatusMethodNotAllowed, stdhttp.StatusText(stdhttp.StatusMethodNotAllowed)
		JSON(w, stdhttp.StatusMethodNotAllowed, env)
	})
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              cfg.MayPort("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
	}
}

// Router is the mux behind the Router facade
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens, serves and blocks; when ctx ends it drains in-flight requests
// for up to SHUTDOWN_GRACE and returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}
	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
		return err
	}
	if err := <-served; !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
