package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/vacancy-gateway/internal/config"
	"github.com/honeycarbs/vacancy-gateway/internal/mcp"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
	"github.com/honeycarbs/vacancy-gateway/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	srv, err := mcp.NewServer(logger, cfg, res)
	if err != nil {
		logger.Error("failed to build server", "err", err)
		os.Exit(1)
	}

	stoppables := []shutdown.Stoppable{srv}
	if res.Scheduler != nil {
		if err := res.Scheduler.Start(ctx); err != nil {
			logger.Error("failed to start lookup sync", "err", err)
			os.Exit(1)
		}
		stoppables = append(stoppables, res.Scheduler)
	}
	stoppables = append(stoppables, shutdown.Func(func(context.Context) error {
		cancel()
		return nil
	}))

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		shutdown.Graceful(
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			10*time.Second,
			logger,
			stoppables...,
		)
	}()

	logger.Info("server initialized and starting", "addr", cfg.Addr())

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
		return
	}

	// Run returns as soon as the listener closes; let the scheduler finish too
	<-stopped
	logger.Info("server stopped")
}
