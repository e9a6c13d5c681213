package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	dispatchhttp "github.com/pacchoferes/dispatch/http"
)

// ShutdownTimeout bounds how long in-flight requests may run after a signal.
const ShutdownTimeout = 15 * time.Second

// Run executes the serve command. It blocks until the context is cancelled
// or SIGINT/SIGTERM is received.
func (c *ServeCmd) Run(deps *Dependencies) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	server := &dispatchhttp.Server{
		Drivers:   deps.Drivers,
		Addresses: deps.Addresses,
		Importer:  deps.Importer,
		Searcher:  deps.Searcher,
		Logger:    logger,
		StaticDir: c.Static,
	}

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	srv := &http.Server{
		Handler:      server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
