package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/bank"
	"github.com/boddenberg/boleto-barcode-go/internal/config"
	"github.com/boddenberg/boleto-barcode-go/internal/handler"
	"github.com/boddenberg/boleto-barcode-go/internal/infra/observability"
	"github.com/boddenberg/boleto-barcode-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("default_bank_code", cfg.DefaultBankCode),
		zap.Duration("request_timeout", cfg.RequestTimeout),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.Int("max_batch_size", cfg.MaxBatchSize),
		zap.Bool("jwt_enabled", cfg.JWTSecret != ""),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "boleto-barcode")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Bank profiles ---
	registry := bank.DefaultRegistry()
	if _, err := registry.Lookup(cfg.DefaultBankCode); err != nil {
		logger.Fatal("default bank code has no profile", zap.String("bank_code", cfg.DefaultBankCode), zap.Error(err))
	}

	// --- Services ---
	boletoSvc := service.NewBoletoService(registry, service.Options{
		DefaultBankCode:  cfg.DefaultBankCode,
		BankLogoBasePath: cfg.BankLogoBasePath,
		MaxConcurrency:   cfg.MaxConcurrency,
		MaxBatchSize:     cfg.MaxBatchSize,
	}, metrics, logger)

	if err := boletoSvc.SelfCheck(context.Background()); err != nil {
		logger.Fatal("encoder self check failed", zap.Error(err))
	}

	// --- Router ---
	router := handler.NewRouter(boletoSvc, metrics, logger, handler.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		RequestTimeout: cfg.RequestTimeout,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
