// Package bank holds the per-bank barcode layouts and the generic field
// formatter and assembler that interpret them. Supporting another bank
// means adding a Layout value, not code.
package bank

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/boddenberg/boleto-barcode-go/internal/checkdigit"
	"github.com/boddenberg/boleto-barcode-go/internal/domain"
)

// generalDigitIndex is where the general check digit sits in every barcode.
const generalDigitIndex = 4

// Profile is the capability set of a bank layout: format fields, assemble
// the barcode, and describe itself.
type Profile interface {
	Code() string
	FormatAccountNumber(e domain.Emissor) (string, error)
	FormatAgencyIdentifier(e domain.Emissor) (string, error)
	FormatTrackingNumber(e domain.Emissor) (string, error)
	WalletLabel(e domain.Emissor) string
	ClassifyWallet(wallet int) domain.WalletInfo
	Assemble(b domain.Boleto) (domain.Barcode, error)
	Describe() domain.BankInfo
}

// FieldKind identifies one segment of the free field.
type FieldKind int

const (
	// FieldAgencyIdentifier is the zero-padded agency-supplied identifier.
	FieldAgencyIdentifier FieldKind = iota
	// FieldAgencyIdentifierCheck is the modulo 11 digit of FieldAgencyIdentifier.
	FieldAgencyIdentifierCheck
	// FieldTrackingNumber is the tracking field rearranged by Layout.TrackingSlices.
	FieldTrackingNumber
)

func (k FieldKind) String() string {
	switch k {
	case FieldAgencyIdentifier:
		return "agency_identifier"
	case FieldAgencyIdentifierCheck:
		return "agency_identifier_check"
	case FieldTrackingNumber:
		return "tracking_number"
	default:
		return "field(" + strconv.Itoa(int(k)) + ")"
	}
}

// End marks a Slice that runs to the end of the source string.
const End = -1

// Slice is a half-open byte range [From, To) of a formatted field.
type Slice struct {
	From int
	To   int
}

// Layout is the declarative description of one bank/model barcode.
type Layout struct {
	Code  string // 3-digit bank code
	Name  string
	Model string

	AccountWidth          int
	AgencyIdentifierWidth int
	TrackingWidth         int    // zero-padded width of the tracking number itself
	IssuanceOrigin        string // fixed code written between wallet and tracking number

	RegisteredWallet  int
	RegisteredLabel   string
	UnregisteredLabel string
	Wallets           []int // wallet codes advertised by Describe

	// FreeField lists the segments written after the amount, in order.
	FreeField []FieldKind
	// TrackingSlices rearranges the formatted tracking field.
	TrackingSlices []Slice
	// FreeFieldOffset is where the free-field check digit input starts in
	// the buffer that does not yet hold the general digit.
	FreeFieldOffset int
}

type layoutProfile struct {
	layout Layout
	digits checkdigit.Generator
}

// NewProfile returns a Profile driven by the given layout. The layout is
// copied, so later changes to the caller's slices do not affect it.
func NewProfile(layout Layout) Profile {
	layout.Wallets = slices.Clone(layout.Wallets)
	layout.FreeField = slices.Clone(layout.FreeField)
	layout.TrackingSlices = slices.Clone(layout.TrackingSlices)
	return &layoutProfile{layout: layout}
}

func (p *layoutProfile) Code() string { return p.layout.Code }

func (p *layoutProfile) FormatAccountNumber(e domain.Emissor) (string, error) {
	return padDigits("account_number", int64(e.AccountNumber), p.layout.AccountWidth)
}

func (p *layoutProfile) FormatAgencyIdentifier(e domain.Emissor) (string, error) {
	return padDigits("agency_identifier", int64(e.AgencyIdentifier), p.layout.AgencyIdentifierWidth)
}

// FormatTrackingNumber writes wallet + issuance origin + padded tracking
// number. The wallet has no fixed width; an out-of-range wallet produces a
// longer field that the assembler rejects.
func (p *layoutProfile) FormatTrackingNumber(e domain.Emissor) (string, error) {
	if e.Wallet < 0 {
		return "", &domain.ErrFormatting{Field: "wallet", Value: strconv.Itoa(e.Wallet)}
	}
	tracking, err := padDigits("tracking_number", e.TrackingNumber, p.layout.TrackingWidth)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(e.Wallet) + p.layout.IssuanceOrigin + tracking, nil
}

func (p *layoutProfile) WalletLabel(e domain.Emissor) string {
	return p.ClassifyWallet(e.Wallet).Label
}

// ClassifyWallet splits wallet codes in two: the registered wallet and
// everything else.
func (p *layoutProfile) ClassifyWallet(wallet int) domain.WalletInfo {
	if wallet == p.layout.RegisteredWallet {
		return domain.WalletInfo{Wallet: wallet, Label: p.layout.RegisteredLabel, Registered: true}
	}
	return domain.WalletInfo{Wallet: wallet, Label: p.layout.UnregisteredLabel}
}

// Assemble builds the 44-digit barcode:
//
//	bank(3) currency(1) general-dv(1) factor(4) amount(10) free-field(24) free-field-dv(1)
//
// The general digit is computed over everything else and inserted last.
func (p *layoutProfile) Assemble(b domain.Boleto) (domain.Barcode, error) {
	var buf strings.Builder
	buf.WriteString(p.layout.Code)
	buf.WriteString(strconv.Itoa(b.CurrencyCode))
	// general check digit is inserted here once the rest is known
	buf.WriteString(b.DueDateFactor)
	buf.WriteString(b.FormattedAmount)

	free, err := p.freeField(b.Emissor)
	if err != nil {
		return "", err
	}
	buf.WriteString(free)

	partial := buf.String()
	if len(partial) < p.layout.FreeFieldOffset {
		return "", &domain.ErrStructural{Length: len(partial), Reason: "header shorter than free field offset"}
	}
	if i := strings.IndexFunc(partial, notDigit); i >= 0 {
		return "", &domain.ErrStructural{Length: len(partial), Reason: "non-digit character at position " + strconv.Itoa(i)}
	}

	freeDV, err := p.digits.Modulo11(partial[p.layout.FreeFieldOffset:])
	if err != nil {
		return "", fmt.Errorf("free field check digit: %w", err)
	}
	partial += strconv.Itoa(freeDV)

	general, err := p.digits.Modulo11(partial)
	if err != nil {
		return "", fmt.Errorf("general check digit: %w", err)
	}

	code := partial[:generalDigitIndex] + strconv.Itoa(general) + partial[generalDigitIndex:]
	if err := ValidateBarcode(code); err != nil {
		return "", err
	}
	return domain.Barcode(code), nil
}

func (p *layoutProfile) freeField(e domain.Emissor) (string, error) {
	var out strings.Builder
	var agencyID string

	for _, kind := range p.layout.FreeField {
		switch kind {
		case FieldAgencyIdentifier:
			v, err := p.FormatAgencyIdentifier(e)
			if err != nil {
				return "", err
			}
			agencyID = v
			out.WriteString(v)

		case FieldAgencyIdentifierCheck:
			if agencyID == "" {
				return "", fmt.Errorf("layout %s: %s before %s", p.layout.Code, kind, FieldAgencyIdentifier)
			}
			dv, err := p.digits.Modulo11(agencyID)
			if err != nil {
				return "", fmt.Errorf("agency identifier check digit: %w", err)
			}
			out.WriteString(strconv.Itoa(dv))

		case FieldTrackingNumber:
			v, err := p.FormatTrackingNumber(e)
			if err != nil {
				return "", err
			}
			shuffled, err := rearrange(v, p.layout.TrackingSlices)
			if err != nil {
				return "", err
			}
			out.WriteString(shuffled)

		default:
			return "", fmt.Errorf("layout %s: unknown field %s", p.layout.Code, kind)
		}
	}
	return out.String(), nil
}

func (p *layoutProfile) Describe() domain.BankInfo {
	wallets := make([]domain.WalletInfo, 0, len(p.layout.Wallets))
	for _, w := range p.layout.Wallets {
		wallets = append(wallets, p.ClassifyWallet(w))
	}
	return domain.BankInfo{
		Code:    p.layout.Code,
		Name:    p.layout.Name,
		Model:   p.layout.Model,
		Wallets: wallets,
	}
}

// rearrange concatenates the given slices of s in order.
func rearrange(s string, parts []Slice) (string, error) {
	var out strings.Builder
	out.Grow(len(s))
	for _, sl := range parts {
		to := sl.To
		if to == End {
			to = len(s)
		}
		if sl.From < 0 || sl.From > to || to > len(s) {
			return "", &domain.ErrStructural{
				Length: len(s),
				Reason: fmt.Sprintf("tracking field too short for slice [%d:%d]", sl.From, sl.To),
			}
		}
		out.WriteString(s[sl.From:to])
	}
	return out.String(), nil
}

func notDigit(r rune) bool { return r < '0' || r > '9' }

func padDigits(field string, value int64, width int) (string, error) {
	if value < 0 || len(strconv.FormatInt(value, 10)) > width {
		return "", &domain.ErrFormatting{Field: field, Value: strconv.FormatInt(value, 10), Width: width}
	}
	return fmt.Sprintf("%0*d", width, value), nil
}
