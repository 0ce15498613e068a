// Package main runs the Huffman codec as an HTTP service.
//
// Settings come from HUFF_* environment variables, see internal/config.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/marcosfnsc/impl-huffman/huffman"
	"github.com/marcosfnsc/impl-huffman/internal/config"
	"github.com/marcosfnsc/impl-huffman/internal/logger"
	"github.com/marcosfnsc/impl-huffman/internal/server"
)

func main() {
	cfg, err := config.FromEnv("HUFF", os.LookupEnv)
	if err != nil {
		logger.New(os.Stderr, false).Errorf("invalid configuration: %v", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.Verbose)
	gin.SetMode(cfg.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		log.Errorf("cannot listen on %s: %v", cfg.HTTP.Addr, err)
		os.Exit(1)
	}

	log.Infof("huffd %s listening on %s", huffman.Version, ln.Addr())
	if err := serve(ctx, cfg, log, ln); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("stopped")
}

// serve handles requests on ln until ctx is done, then drains in-flight
// requests for at most cfg.HTTP.ShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger, ln net.Listener) error {
	srv := &http.Server{
		Handler:      server.New(cfg, log),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}
