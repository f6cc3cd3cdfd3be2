package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/germanamz/blendy/pkg/server"
)

// runServe starts the MCP server over stdio, or over streamable HTTP when
// httpAddr is set.
func runServe(configPath, blendyDirPath, httpAddr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadServerConfig(configPath, blendyDirPath)
	if err != nil {
		return err
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if httpAddr != "" {
		return serveHTTP(ctx, s, httpAddr)
	}

	err = s.Serve(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// serveHTTP mounts the streamable HTTP handler and blocks until ctx is
// cancelled.
func serveHTTP(ctx context.Context, s *server.Server, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	fmt.Fprintf(os.Stderr, "blendy: serving MCP on %s\n", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
