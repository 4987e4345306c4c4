package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fleshka4/twindex-reader/internal/config"
	"github.com/fleshka4/twindex-reader/internal/service"
)

// Server represents the HTTP transport layer.
type Server struct {
	svc service.Service
	mux *http.ServeMux
	log zerolog.Logger

	graceTimeout      time.Duration
	readHeaderTimeout time.Duration
	requestTimeout    time.Duration
}

// NewServer creates a new HTTP server with registered routes. metrics may be
// nil, in which case /metrics is not served.
func NewServer(svc service.Service, cfg *config.Config, metrics http.Handler, log zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if svc == nil {
		return nil, errors.New("service is nil")
	}

	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
		log: log,

		graceTimeout:      cfg.GraceTimeout,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		requestTimeout:    cfg.RequestTimeout,
	}

	s.mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			s.log.Warn().Err(err).Msg("ping write error")
		}
	})
	if metrics != nil {
		s.mux.Handle("/metrics", metrics)
	}

	s.mux.HandleFunc("/block", s.handleBlock)
	s.mux.HandleFunc("/pools", s.handlePools)
	s.mux.HandleFunc("/pools/id", s.handlePoolID)
	s.mux.HandleFunc("/wallet/locked", s.handleLocked)
	s.mux.HandleFunc("/wallet/loans", s.handleLoans)
	s.mux.HandleFunc("/wallet/pending", s.handlePending)
	s.mux.HandleFunc("/lp/position", s.handleLPPosition)
	s.mux.HandleFunc("/lp/price", s.handleLPPrice)
	s.mux.HandleFunc("/price/token", s.handleTokenPrice)
	s.mux.HandleFunc("/price/oracle/stock", s.handleOracleStock)
	s.mux.HandleFunc("/price/oracle/dolly", s.handleOracleDolly)

	return s, nil
}

// ListenAndServe starts the HTTP server and enables graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.logMiddleware(s.mux),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Block until a signal is received or the listener fails.
	select {
	case <-stop:
	case err := <-errCh:
		return errors.Wrap(err, "srv.ListenAndServe")
	}
	s.log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "srv.Shutdown")
	}
	s.log.Info().Msg("server stopped gracefully")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logMiddleware logs each HTTP request, its status and the time taken to
// process it.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.requestTimeout)
}
