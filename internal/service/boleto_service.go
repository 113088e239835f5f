// Package service provides the business logic layer (use cases).
// BoletoService turns issuer and payment data into barcodes and
// digitable lines using the registered bank profiles.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/bank"
	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/infra/observability"
	"github.com/boddenberg/boleto-barcode-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var boletoTracer = otel.Tracer("service/boleto")

var (
	factorRegex = regexp.MustCompile(`^[0-9]{4}$`)
	amountRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Options tunes the service.
type Options struct {
	DefaultBankCode  string
	BankLogoBasePath string
	MaxConcurrency   int
	MaxBatchSize     int
}

// BoletoService encodes boletos through a profile registry.
type BoletoService struct {
	registry port.ProfileRegistry
	opts     Options
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewBoletoService creates a new encoding service.
func NewBoletoService(registry port.ProfileRegistry, opts Options, metrics *observability.Metrics, logger *zap.Logger) *BoletoService {
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}
	if opts.MaxBatchSize < 1 {
		opts.MaxBatchSize = 1
	}
	return &BoletoService{registry: registry, opts: opts, metrics: metrics, logger: logger}
}

// ============================================================
// Encoding
// ============================================================

// Encode builds the barcode and digitable line for one boleto. Every
// failure is final; the same input always fails the same way.
func (s *BoletoService) Encode(ctx context.Context, req *domain.EncodeRequest) (*domain.EncodeResult, error) {
	ctx, span := boletoTracer.Start(ctx, "BoletoService.Encode")
	defer span.End()

	bankCode := req.BankCode
	if bankCode == "" {
		bankCode = s.opts.DefaultBankCode
	}
	span.SetAttributes(
		attribute.String("bank.code", bankCode),
		attribute.Int("boleto.wallet", req.Wallet),
	)

	start := time.Now()
	result, err := s.encode(ctx, bankCode, req)
	s.metrics.RecordEncode(bankCode, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("barcode encoding failed",
			zap.String("bank_code", bankCode),
			zap.Int("wallet", req.Wallet),
			zap.String("error_kind", observability.ErrorKind(err)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("barcode encoded",
		zap.String("bank_code", bankCode),
		zap.String("barcode", result.Barcode),
	)
	return result, nil
}

func (s *BoletoService) encode(ctx context.Context, bankCode string, req *domain.EncodeRequest) (*domain.EncodeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := s.registry.Lookup(bankCode)
	if err != nil {
		return nil, err
	}

	boleto, err := buildBoleto(req)
	if err != nil {
		return nil, err
	}

	code, err := profile.Assemble(boleto)
	if err != nil {
		return nil, err
	}

	line, err := bank.DigitableLine(code)
	if err != nil {
		return nil, fmt.Errorf("digitable line: %w", err)
	}

	emissor := boleto.Emissor
	tracking, err := profile.FormatTrackingNumber(emissor)
	if err != nil {
		return nil, err
	}
	account, err := profile.FormatAccountNumber(emissor)
	if err != nil {
		return nil, err
	}
	agencyID, err := profile.FormatAgencyIdentifier(emissor)
	if err != nil {
		return nil, err
	}

	return &domain.EncodeResult{
		BankCode:               profile.Code(),
		Barcode:                code.String(),
		DigitableLine:          line.String(),
		DigitableLineFormatted: line.Formatted(),
		WalletLabel:            profile.WalletLabel(emissor),
		TrackingNumber:         tracking,
		AccountNumber:          account,
		AgencyIdentifier:       agencyID,
		DueDateFactor:          boleto.DueDateFactor,
		FormattedAmount:        boleto.FormattedAmount,
		LogoPath:               bank.LogoPath(s.opts.BankLogoBasePath, profile.Code()),
	}, nil
}

// buildBoleto resolves the due-date factor and amount, preferring the
// pre-formatted values when both forms are present.
func buildBoleto(req *domain.EncodeRequest) (domain.Boleto, error) {
	b := domain.Boleto{
		Emissor:      req.Emissor(),
		CurrencyCode: domain.CurrencyReal,
	}
	if req.CurrencyCode != nil {
		if *req.CurrencyCode < 0 || *req.CurrencyCode > 9 {
			return domain.Boleto{}, &domain.ErrValidation{Field: "currencyCode", Message: "must be a single digit"}
		}
		b.CurrencyCode = *req.CurrencyCode
	}

	switch {
	case req.DueDateFactor != "":
		if !factorRegex.MatchString(req.DueDateFactor) {
			return domain.Boleto{}, &domain.ErrValidation{Field: "dueDateFactor", Message: "must be 4 digits"}
		}
		b.DueDateFactor = req.DueDateFactor
	case req.DueDate != "":
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return domain.Boleto{}, &domain.ErrValidation{Field: "dueDate", Message: "expected YYYY-MM-DD"}
		}
		factor, err := domain.DueDateFactor(due)
		if err != nil {
			return domain.Boleto{}, err
		}
		b.DueDateFactor = factor
	default:
		return domain.Boleto{}, &domain.ErrValidation{Field: "dueDate|dueDateFactor", Message: "at least one is required"}
	}

	switch {
	case req.FormattedAmount != "":
		if !amountRegex.MatchString(req.FormattedAmount) {
			return domain.Boleto{}, &domain.ErrValidation{Field: "formattedAmount", Message: "must be 10 digits"}
		}
		b.FormattedAmount = req.FormattedAmount
	case req.Amount != nil:
		amount, err := domain.FormatAmount(*req.Amount)
		if err != nil {
			return domain.Boleto{}, err
		}
		b.FormattedAmount = amount
	default:
		return domain.Boleto{}, &domain.ErrValidation{Field: "amount|formattedAmount", Message: "at least one is required"}
	}

	return b, nil
}

// EncodeBatch encodes every item independently with bounded parallelism.
// Item failures are reported per item; only cancellation fails the batch.
func (s *BoletoService) EncodeBatch(ctx context.Context, req *domain.BatchEncodeRequest) (*domain.BatchEncodeResult, error) {
	ctx, span := boletoTracer.Start(ctx, "BoletoService.EncodeBatch")
	defer span.End()

	n := len(req.Items)
	if n == 0 {
		return nil, &domain.ErrValidation{Field: "items", Message: "at least one is required"}
	}
	if n > s.opts.MaxBatchSize {
		return nil, &domain.ErrValidation{Field: "items", Message: fmt.Sprintf("at most %d items per batch", s.opts.MaxBatchSize)}
	}
	span.SetAttributes(attribute.Int("batch.size", n))
	s.metrics.ObserveBatchSize(n)

	items := make([]domain.BatchItemResult, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxConcurrency)
	for i := range req.Items {
		g.Go(func() error {
			items[i].Index = i
			res, err := s.Encode(gctx, &req.Items[i])
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				items[i].Error = err.Error()
				return nil
			}
			items[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &domain.ErrTimeout{Operation: "EncodeBatch"}
		}
		return nil, err
	}

	result := &domain.BatchEncodeResult{
		BatchID: uuid.New().String(),
		Total:   n,
		Items:   items,
	}
	for _, it := range items {
		if it.Error != "" {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	s.logger.Info("batch encoded",
		zap.String("batch_id", result.BatchID),
		zap.Int("total", result.Total),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
