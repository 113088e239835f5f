package service

import (
	"context"
	"fmt"

	"github.com/boddenberg/boleto-barcode-go/internal/bank"
	"github.com/boddenberg/boleto-barcode-go/internal/domain"
)

// ============================================================
// Bank profiles
// ============================================================

// ListBanks describes every registered profile, ordered by bank code.
func (s *BoletoService) ListBanks(ctx context.Context) []domain.BankInfo {
	_, span := boletoTracer.Start(ctx, "BoletoService.ListBanks")
	defer span.End()

	profiles := s.registry.Profiles()
	out := make([]domain.BankInfo, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, s.describe(p))
	}
	return out
}

// DescribeBank returns one profile with its logo path and wallet labels.
func (s *BoletoService) DescribeBank(ctx context.Context, code string) (*domain.BankInfo, error) {
	_, span := boletoTracer.Start(ctx, "BoletoService.DescribeBank")
	defer span.End()

	p, err := s.registry.Lookup(code)
	if err != nil {
		return nil, err
	}
	info := s.describe(p)
	return &info, nil
}

// ClassifyWallet returns the bank-specific label of a wallet code.
func (s *BoletoService) ClassifyWallet(ctx context.Context, code string, wallet int) (*domain.WalletInfo, error) {
	_, span := boletoTracer.Start(ctx, "BoletoService.ClassifyWallet")
	defer span.End()

	p, err := s.registry.Lookup(code)
	if err != nil {
		return nil, err
	}
	info := p.ClassifyWallet(wallet)
	return &info, nil
}

func (s *BoletoService) describe(p bank.Profile) domain.BankInfo {
	info := p.Describe()
	info.LogoPath = bank.LogoPath(s.opts.BankLogoBasePath, p.Code())
	return info
}

// selfCheckEmissor is the fixed sample pushed through every profile by SelfCheck.
var selfCheckEmissor = domain.Emissor{
	AccountNumber:    4321,
	Wallet:           1,
	TrackingNumber:   19,
	AgencyIdentifier: 5507,
}

// SelfCheck encodes a fixed sample twice with every registered profile and
// checks both runs agree. It backs the health endpoint.
func (s *BoletoService) SelfCheck(ctx context.Context) error {
	_, span := boletoTracer.Start(ctx, "BoletoService.SelfCheck")
	defer span.End()

	sample := domain.Boleto{
		Emissor:         selfCheckEmissor,
		DueDateFactor:   "3242",
		FormattedAmount: "0000032112",
		CurrencyCode:    domain.CurrencyReal,
	}
	for _, p := range s.registry.Profiles() {
		first, err := p.Assemble(sample)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Code(), err)
		}
		second, err := p.Assemble(sample)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Code(), err)
		}
		if first != second {
			return fmt.Errorf("profile %s: non-deterministic output", p.Code())
		}
		if _, err := bank.DigitableLine(first); err != nil {
			return fmt.Errorf("profile %s: %w", p.Code(), err)
		}
	}
	return nil
}
