package handler

import (
	"net/http"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/infra/observability"
	"github.com/boddenberg/boleto-barcode-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// RouterConfig carries the HTTP-level settings.
type RouterConfig struct {
	// JWTSecret protects /v1 when non-empty.
	JWTSecret      string
	RequestTimeout time.Duration
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svc *service.BoletoService, metrics *observability.Metrics, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svc, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(JWTAuthMiddleware([]byte(cfg.JWTSecret), logger))
		}

		// =============================================
		// 1. Boletos
		// POST /v1/boletos/barcode
		// POST /v1/boletos/barcode/batch
		// =============================================
		r.Post("/boletos/barcode", encodeBarcodeHandler(svc, logger))
		r.Post("/boletos/barcode/batch", encodeBatchHandler(svc, logger))

		// =============================================
		// 2. Bank profiles
		// =============================================
		r.Get("/banks", listBanksHandler(svc))
		r.Get("/banks/{bankCode}", getBankHandler(svc, logger))
		r.Get("/banks/{bankCode}/wallets/{wallet}", getWalletHandler(svc, logger))

		// =============================================
		// 3. Metrics
		// GET /v1/metrics/encoder
		// =============================================
		r.Get("/metrics/encoder", encoderMetricsHandler(metrics))
	})

	return r
}

// ============================================================
// Operational
// ============================================================

func healthzHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)

		start := time.Now()
		err := svc.SelfCheck(r.Context())
		latency := time.Since(start).Milliseconds()

		status := "healthy"
		code := http.StatusOK
		if err != nil {
			logger.Error("self check failed", zap.Error(err))
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, code, domain.HealthStatus{
			Status: status,
			Services: []domain.ServiceHealth{
				{Name: "barcode-encoder", Status: status, LatencyMs: latency, LastChecked: now},
			},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func encoderMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Snapshot())
	}
}
