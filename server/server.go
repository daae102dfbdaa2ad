package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"

	"github.com/velotic/velo/config"
)

// Lifecycle is the application's startup/shutdown hook surface. The
// server runs Startup before accepting connections and Shutdown during
// graceful teardown.
type Lifecycle interface {
	Startup(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Server struct {
	configProvider *config.Provider
	handler        http.Handler
	lifecycle      Lifecycle
	logger         *slog.Logger
}

func NewServer(provider *config.Provider, handler http.Handler, lifecycle Lifecycle, logger *slog.Logger) *Server {
	return &Server{
		configProvider: provider,
		handler:        handler,
		lifecycle:      lifecycle,
		logger:         logger,
	}
}

// Run starts the server and blocks until a shutdown signal or a server
// error, then tears down gracefully within the configured timeout.
func (s *Server) Run() error {
	cfg := s.configProvider.Get().Server

	s.logger.Info("server configuration",
		"addr", cfg.Addr,
		"read_timeout", cfg.ReadTimeout.Duration,
		"read_header_timeout", cfg.ReadHeaderTimeout.Duration,
		"write_timeout", cfg.WriteTimeout.Duration,
		"idle_timeout", cfg.IdleTimeout.Duration,
		"shutdown_timeout", cfg.ShutdownGracefulTimeout.Duration,
		"auto_tls", cfg.EnableAutoTLS,
	)

	srv := newHTTPServer(cfg, s.handler)

	if err := s.lifecycle.Startup(context.Background()); err != nil {
		s.logger.Error("startup hooks failed", "err", err)
		return err
	}

	serverError := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", cfg.Addr)
		var err error
		if cfg.EnableAutoTLS {
			m := &autocert.Manager{
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(cfg.AutoTLSDomains...),
				Cache:      autocert.DirCache(cfg.AutoTLSCacheDir),
			}
			srv.TLSConfig = m.TLSConfig()
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("listen error", "err", err)
			serverError <- err
		}
	}()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	select {
	case <-ctx.Done():
		s.logger.Info("received shutdown signal, shutting down gracefully")
	case err := <-serverError:
		s.logger.Error("server error, initiating shutdown", "err", err)
	}

	// restore default signal behavior while the shutdown runs
	stop()

	gracefulCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownGracefulTimeout.Duration)
	defer cancelShutdown()

	shutdownGroup, _ := errgroup.WithContext(gracefulCtx)

	shutdownGroup.Go(func() error {
		s.logger.Info("shutting down HTTP server")
		if err := srv.Shutdown(gracefulCtx); err != nil {
			s.logger.Error("HTTP server shutdown error", "err", err)
			return err
		}
		s.logger.Info("HTTP server stopped gracefully")
		return nil
	})

	shutdownGroup.Go(func() error {
		s.logger.Info("running shutdown hooks")
		if err := s.lifecycle.Shutdown(gracefulCtx); err != nil {
			s.logger.Error("shutdown hooks error", "err", err)
			return err
		}
		s.logger.Info("shutdown hooks completed")
		return nil
	})

	if err := shutdownGroup.Wait(); err != nil {
		return err
	}

	s.logger.Info("all systems stopped gracefully")
	return nil
}

func newHTTPServer(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout.Duration,
		WriteTimeout:      cfg.WriteTimeout.Duration,
		IdleTimeout:       cfg.IdleTimeout.Duration,
	}
}
