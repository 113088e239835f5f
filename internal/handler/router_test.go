package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boddenberg/boleto-barcode-go/internal/bank"
	"github.com/boddenberg/boleto-barcode-go/internal/handler"
	"github.com/boddenberg/boleto-barcode-go/internal/infra/observability"
	"github.com/boddenberg/boleto-barcode-go/internal/service"

	"go.uber.org/zap"
)

func newRouter(cfg handler.RouterConfig) (http.Handler, *observability.Metrics) {
	metrics := observability.NewMetrics()
	svc := service.NewBoletoService(bank.DefaultRegistry(), service.Options{
		DefaultBankCode:  "104",
		BankLogoBasePath: "/static/img/banks",
		MaxConcurrency:   4,
		MaxBatchSize:     5,
	}, metrics, zap.NewNop())
	return handler.NewRouter(svc, metrics, zap.NewNop(), cfg), metrics
}

func TestHealthz(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestReadyz(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestPing(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	// one encode so the vectors have samples to expose
	enc := httptest.NewRequest(http.MethodPost, "/v1/boletos/barcode", strings.NewReader(referenceBody))
	router.ServeHTTP(httptest.NewRecorder(), enc)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "boleto_encodes_total") {
		t.Errorf("expected boleto_encodes_total in exposition")
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
