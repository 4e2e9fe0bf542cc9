package main

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/cybersky/showcase/render"
	"github.com/cybersky/showcase/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := web.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	source := catalog.New(cfg.Catalog, catalog.WithLogger(logger))
	c, err := source.GetCatalog(ctx)
	if err != nil {
		logger.Fatal("load catalog", zap.String("source", source.Source()), zap.Error(err))
	}

	opts := web.Options{
		Page:           render.Options{Counter: cfg.Counter()},
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	}
	if info, err := os.Stat(cfg.AssetsDir); err == nil && info.IsDir() {
		opts.Assets = os.DirFS(cfg.AssetsDir)
		for _, logo := range c.Logos() {
			name := strings.TrimPrefix(logo, "/")
			if _, err := os.Stat(cfg.AssetsDir + "/" + name); err != nil {
				logger.Warn("logo missing from assets dir", zap.String("logo", logo), zap.String("dir", cfg.AssetsDir))
			}
		}
	} else {
		logger.Warn("assets dir not found, logos will render as alt text", zap.String("dir", cfg.AssetsDir))
	}

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           web.NewServer(source, opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
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

	logger.Info("showcase-web listening",
		zap.String("addr", httpServer.Addr),
		zap.String("catalog", source.Source()),
		zap.Int("products", len(c.Products())),
	)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("showcase-web stopped")
}
