package handler

import (
	"net/http"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// 1. Boletos
// ============================================================

func encodeBarcodeHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/boletos/barcode")
		defer span.End()

		var req domain.EncodeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if sub := SubjectFromContext(ctx); sub != "" {
			span.SetAttributes(attribute.String("auth.subject", sub))
		}

		result, err := svc.Encode(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func encodeBatchHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/boletos/barcode/batch")
		defer span.End()

		var req domain.BatchEncodeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if sub := SubjectFromContext(ctx); sub != "" {
			span.SetAttributes(attribute.String("auth.subject", sub))
		}

		result, err := svc.EncodeBatch(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
