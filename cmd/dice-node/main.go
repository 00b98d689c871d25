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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/api/middleware"
	"github.com/feral-file/ff-dice-registry/internal/api/server"
	"github.com/feral-file/ff-dice-registry/internal/config"
	"github.com/feral-file/ff-dice-registry/internal/emitter"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/providers/jetstream"
	"github.com/feral-file/ff-dice-registry/internal/registry"
	"github.com/feral-file/ff-dice-registry/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDiceNodeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "dice-node",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Dice Node")

	registryConfig, err := cfg.Engine.RegistryConfig()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid engine configuration", zap.Error(err))
	}

	// Initialize store
	var dataStore store.Store
	if cfg.Database.InMemory() {
		dataStore = store.NewMemoryStore()
		logger.WarnCtx(ctx, "Database host not configured, state is kept in memory")
	} else {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}

		// Configure connection pool
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		dataStore = store.NewPGStore(db)
	}

	// Initialize adapters
	clockAdapter := adapter.NewClock()

	// Deploy the contracts
	executionHost := host.New(dataStore, clockAdapter)
	diceRegistry, err := registry.Deploy(executionHost, dataStore, registryConfig)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to deploy contracts", zap.Error(err))
	}

	if err := fundGenesisAccounts(ctx, cfg.Engine, executionHost); err != nil {
		logger.FatalCtx(ctx, "Failed to fund genesis accounts", zap.Error(err))
	}

	errCh := make(chan error, 2)

	// Relay the journal to NATS when configured
	if cfg.NATS.URL != "" {
		natsPublisher, err := jetstream.NewPublisher(
			ctx,
			jetstream.Config{
				URL:            cfg.NATS.URL,
				StreamName:     cfg.NATS.StreamName,
				MaxReconnects:  cfg.NATS.MaxReconnects,
				ReconnectWait:  cfg.NATS.ReconnectWait,
				ConnectionName: cfg.NATS.ConnectionName,
			}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream")

		eventEmitter := emitter.NewEmitter(natsPublisher, dataStore, emitterConfig(cfg.Emitter), clockAdapter)
		defer eventEmitter.Close()

		go func() {
			if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey:      cfg.Auth.JWTPublicKey,
			APIKeys:           cfg.Auth.APIKeys,
			AllowCallerHeader: cfg.Auth.AllowCallerHeader,
		},
	}
	if cfg.Auth.AllowCallerHeader {
		logger.WarnCtx(ctx, "Caller header is trusted, do not expose this node publicly")
	}

	// Create and start server
	srv := server.New(serverConfig, diceRegistry)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "dice-node"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Dice node stopped")
}

// fundGenesisAccounts credits the configured accounts that hold no balance yet
func fundGenesisAccounts(ctx context.Context, cfg config.EngineConfig, h host.Host) error {
	accounts, balance, err := cfg.Genesis()
	if err != nil {
		return err
	}

	for _, account := range accounts {
		current, err := h.BalanceOf(ctx, account)
		if err != nil {
			return err
		}
		if !current.IsZero() {
			continue
		}
		if err := h.Fund(ctx, account, balance); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Funded genesis account",
			zap.String("account", account.Hex()),
			zap.String("balance", balance.Dec()))
	}
	return nil
}

func emitterConfig(cfg config.EmitterConfig) emitter.Config {
	return emitter.Config{
		CursorName:           cfg.CursorName,
		BatchSize:            cfg.BatchSize,
		PollInterval:         cfg.PollInterval,
		RetryInitialInterval: cfg.RetryInitialInterval,
		RetryMaxInterval:     cfg.RetryMaxInterval,
		RetryMaxElapsedTime:  cfg.RetryMaxElapsedTime,
	}
}
