package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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
	// stdout carries the protocol; logging.New writes to stderr.
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

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Fatal("stdio mcp server failed", zap.Error(err))
	}
}
