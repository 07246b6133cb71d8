package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/api/middleware"
	"github.com/soulbind/kyc-attestor/internal/api/server"
	"github.com/soulbind/kyc-attestor/internal/challenge"
	"github.com/soulbind/kyc-attestor/internal/config"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/events"
	"github.com/soulbind/kyc-attestor/internal/issuer"
	"github.com/soulbind/kyc-attestor/internal/logger"
	"github.com/soulbind/kyc-attestor/internal/oracle"
	"github.com/soulbind/kyc-attestor/internal/providers/jetstream"
	"github.com/soulbind/kyc-attestor/internal/registry"
	"github.com/soulbind/kyc-attestor/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting KYC attestor API")

	// Connect to database. TranslateError is required so unique violations
	// surface as gorm.ErrDuplicatedKey in the store.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Seed the issuing authority record on first boot. The database copy is
	// authoritative afterwards, so this is a no-op on every later start.
	adminAddress, _ := domain.NewIdentity(cfg.Issuer.AdminAddress)
	beneficiaryAddress, _ := domain.NewIdentity(cfg.Issuer.BeneficiaryAddress)
	if err := dataStore.SeedIssuerConfig(ctx, store.SeedIssuerConfigInput{
		AdminAddress:       adminAddress.String(),
		BeneficiaryAddress: beneficiaryAddress.String(),
		PublicKey:          strings.ToLower(strings.TrimPrefix(cfg.Issuer.PublicKey, "0x")),
		FeePerYear:         cfg.Issuer.FeePerYear,
		PriceFeedID:        cfg.Issuer.PriceFeedID,
	}); err != nil {
		logger.FatalCtx(ctx, "Failed to seed issuer config", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Issuer config ready", zap.String("admin", adminAddress.String()))

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	// Connect to NATS JetStream for credential events
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	dispatcher := events.NewDispatcher(events.Config{
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, publisher, clock)

	// Assemble the issuing service
	oracleClient := oracle.NewClient(adapter.NewHTTPClient(cfg.Oracle.HTTPTimeout), cfg.Oracle.BaseURL)
	verifier := challenge.NewVerifier(jsonAdapter, jcsAdapter)
	credentialRegistry := registry.New(dataStore, clock)
	service := issuer.NewService(dataStore, oracleClient, verifier, credentialRegistry, dispatcher, clock, jsonAdapter, jcsAdapter)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, service, middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	case <-publisher.CloseChan():
		logger.ErrorCtx(ctx, errors.New("NATS connection closed permanently"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Drain queued credential events before the publisher goes away
	dispatcher.Close()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
