package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/velotic/velo/config"
)

type fakeLifecycle struct {
	startupErr     error
	shutdownErr    error
	startupCalled  chan struct{}
	shutdownCalled chan struct{}
}

func newFakeLifecycle() *fakeLifecycle {
	return &fakeLifecycle{
		startupCalled:  make(chan struct{}, 1),
		shutdownCalled: make(chan struct{}, 1),
	}
}

func (f *fakeLifecycle) Startup(ctx context.Context) error {
	f.startupCalled <- struct{}{}
	return f.startupErr
}

func (f *fakeLifecycle) Shutdown(ctx context.Context) error {
	f.shutdownCalled <- struct{}{}
	return f.shutdownErr
}

func newTestServer(t *testing.T, lc Lifecycle) *Server {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Server.Addr = ":0" // random free port
	cfg.Server.ShutdownGracefulTimeout.Duration = 200 * time.Millisecond
	provider := config.NewProvider(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return NewServer(provider, handler, lc, logger)
}

func TestServerRunFullLifecycle(t *testing.T) {
	lc := newFakeLifecycle()
	server := newTestServer(t, lc)

	runResult := make(chan error, 1)
	go func() {
		runResult <- server.Run()
	}()

	select {
	case <-lc.startupCalled:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for startup hooks")
	}

	// give the listener goroutine a moment before signaling
	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("failed to send SIGINT: %v", err)
	}

	select {
	case <-lc.shutdownCalled:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for shutdown hooks")
	}

	select {
	case err := <-runResult:
		if err != nil {
			t.Errorf("expected nil from Run on graceful shutdown, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestServerRunStartupFailure(t *testing.T) {
	lc := newFakeLifecycle()
	lc.startupErr = errors.New("startup failed")
	server := newTestServer(t, lc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, lc.startupErr) {
			t.Errorf("expected startup error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Run to fail")
	}

	select {
	case <-lc.shutdownCalled:
		t.Error("shutdown hooks ran after a startup failure")
	default:
	}
}

func TestServerRunShutdownHookError(t *testing.T) {
	lc := newFakeLifecycle()
	lc.shutdownErr = errors.New("shutdown failed")
	server := newTestServer(t, lc)

	runResult := make(chan error, 1)
	go func() {
		runResult <- server.Run()
	}()

	select {
	case <-lc.startupCalled:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for startup hooks")
	}

	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("failed to send SIGINT: %v", err)
	}

	select {
	case err := <-runResult:
		if !errors.Is(err, lc.shutdownErr) {
			t.Errorf("expected shutdown error from Run, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestNewHTTPServerFields(t *testing.T) {
	cfg := config.NewDefaultConfig().Server
	cfg.Addr = ":9999"
	cfg.ReadTimeout.Duration = 3 * time.Second
	cfg.WriteTimeout.Duration = 4 * time.Second
	cfg.IdleTimeout.Duration = 5 * time.Second
	cfg.ReadHeaderTimeout.Duration = 2 * time.Second

	handler := http.NewServeMux()
	srv := newHTTPServer(cfg, handler)

	if srv.Addr != ":9999" {
		t.Errorf("expected addr :9999, got %s", srv.Addr)
	}
	if srv.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected read timeout: %v", srv.ReadTimeout)
	}
	if srv.ReadHeaderTimeout != 2*time.Second {
		t.Errorf("unexpected read header timeout: %v", srv.ReadHeaderTimeout)
	}
	if srv.WriteTimeout != 4*time.Second {
		t.Errorf("unexpected write timeout: %v", srv.WriteTimeout)
	}
	if srv.IdleTimeout != 5*time.Second {
		t.Errorf("unexpected idle timeout: %v", srv.IdleTimeout)
	}
	if srv.Handler == nil {
		t.Error("expected handler to be set")
	}
}
