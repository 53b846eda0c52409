package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mpfeif/caddiebook/internal/api"
	"github.com/mpfeif/caddiebook/internal/config"
	"github.com/mpfeif/caddiebook/internal/factory"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
	"github.com/mpfeif/caddiebook/internal/services/settlement"
	redisstorage "github.com/mpfeif/caddiebook/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", "caddiebook.yaml", "path to the config file")
	flag.Parse()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		HandicapPolicy: handicap.Policy{
			DefaultIndex: cfg.Handicap.DefaultIndex,
			MaxSweeps:    cfg.Handicap.MaxSweeps,
		},
		SettlementConfig: settlement.Config{
			RoundingUnit: cfg.Settlement.RoundingUnit,
		},
		Logger:      logger,
		StorageType: cfg.Storage.Type,
	}

	if factoryCfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		Storage:              app.Storage,
		ProfileController:    app.ProfileController,
		EventController:      app.EventController,
		PayoutService:        app.PayoutService,
		SettlementController: app.SettlementController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
