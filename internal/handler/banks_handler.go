package handler

import (
	"net/http"
	"strconv"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// 2. Bank profiles
// ============================================================

func listBanksHandler(svc *service.BoletoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/banks")
		defer span.End()

		banks := svc.ListBanks(ctx)
		writeJSON(w, http.StatusOK, domain.ListResponse[domain.BankInfo]{Data: banks, Total: len(banks)})
	}
}

func getBankHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/banks/{bankCode}")
		defer span.End()

		code := chi.URLParam(r, "bankCode")
		span.SetAttributes(attribute.String("bank.code", code))

		info, err := svc.DescribeBank(ctx, code)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func getWalletHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/banks/{bankCode}/wallets/{wallet}")
		defer span.End()

		code := chi.URLParam(r, "bankCode")
		wallet, err := strconv.Atoi(chi.URLParam(r, "wallet"))
		if err != nil || wallet < 0 {
			writeError(w, http.StatusBadRequest, "wallet must be a non-negative integer")
			return
		}
		span.SetAttributes(
			attribute.String("bank.code", code),
			attribute.Int("boleto.wallet", wallet),
		)

		info, err := svc.ClassifyWallet(ctx, code, wallet)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}
