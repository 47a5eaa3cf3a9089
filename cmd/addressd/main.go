// Command addressd serves the address checker and address book over HTTP.
//
// Usage:
//
//	addressd [-config path/to/config.yaml]
//
// Settings come from the YAML file, a .env file in the working directory and
// POSTADDR_* environment variables, in increasing order of precedence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreiashu/postaddr"
	"github.com/andreiashu/postaddr/internal/config"
	"github.com/andreiashu/postaddr/internal/logger"
	"github.com/andreiashu/postaddr/internal/server"
	"github.com/andreiashu/postaddr/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("POSTADDR_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	book, err := store.Open(cfg.Store.Dir, log.Named("store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := book.Close(); err != nil {
			log.Error("failed to close address book", zap.Error(err))
		}
	}()

	checker := postaddr.NewChecker(
		postaddr.WithCacheSize(cfg.Cache.Size),
		postaddr.WithCacheTTL(cfg.Cache.TTL),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.New(server.Config{
		RateLimit:    cfg.HTTP.RateLimit,
		RateBurst:    cfg.HTTP.RateBurst,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
	}, checker, book, log.Named("http"), reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if rl := srv.Limiter(); rl != nil {
		go rl.Cleanup(ctx, time.Minute, 10*time.Minute)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("env", cfg.Env),
			zap.Strings("countries", postaddr.SupportedCountries()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
