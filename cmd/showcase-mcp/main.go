package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cybersky/showcase/catalog"
	"github.com/cybersky/showcase/config"
	"github.com/cybersky/showcase/logging"
	"github.com/cybersky/showcase/mcpsrv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	cfg, err := mcpsrv.LoadConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	source := catalog.New(cfg.Catalog, catalog.WithLogger(logger))
	if _, err := source.GetCatalog(ctx); err != nil {
		logger.Fatal("load catalog", zap.String("source", source.Source()), zap.Error(err))
	}

	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableAdmin: cfg.AdminEnabled(),
		APIKey:      cfg.APIKey,
	})

	go mcpsrv.RefreshPeriodically(ctx, source, cfg.CacheClearInterval, logger)

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("showcase-mcp listening",
		zap.String("addr", httpServer.Addr),
		zap.Bool("admin", cfg.AdminEnabled()),
		zap.Bool("stateless", cfg.Stateless),
	)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("showcase-mcp stopped")
}
