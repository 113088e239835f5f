package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================
// Boleto value objects
// ============================================================

// CurrencyReal is the species code for Brazilian Real (R$).
const CurrencyReal = 9

// BarcodeLength is the number of digits in a barcode.
const BarcodeLength = 44

// DigitableLineLength is the number of digits in a bank-slip digitable line.
const DigitableLineLength = 47

// Emissor holds the bank-account identifiers of the document issuer
// ("cedente"). Values are already validated upstream.
type Emissor struct {
	Beneficiary      string // cedente
	Agency           int
	AgencyDigit      string
	AccountNumber    int
	AccountDigit     string
	Wallet           int   // carteira
	TrackingNumber   int64 // nosso número, up to 15 digits
	AgencyIdentifier int   // código fornecido pela agência, up to 6 digits
}

// Boleto aggregates everything the barcode assembler reads.
// DueDateFactor and FormattedAmount are passed through unchanged.
type Boleto struct {
	Emissor         Emissor
	DueDateFactor   string // 4 digits
	FormattedAmount string // 10 digits, cents
	CurrencyCode    int    // single digit
}

// NewBoleto builds a Boleto in Real from a calendar due date and a decimal amount.
func NewBoleto(emissor Emissor, dueDate time.Time, amount decimal.Decimal) (Boleto, error) {
	factor, err := DueDateFactor(dueDate)
	if err != nil {
		return Boleto{}, err
	}
	formatted, err := FormatAmount(amount)
	if err != nil {
		return Boleto{}, err
	}
	return Boleto{
		Emissor:         emissor,
		DueDateFactor:   factor,
		FormattedAmount: formatted,
		CurrencyCode:    CurrencyReal,
	}, nil
}

// Barcode is a 44-digit encoded line. Only assemblers produce values of this
// type, and they never produce a malformed one.
type Barcode string

func (b Barcode) String() string { return string(b) }

// BankCode returns the first three digits.
func (b Barcode) BankCode() string {
	if len(b) < 3 {
		return ""
	}
	return string(b[:3])
}

// DigitableLine is the 47-digit typed form of a bank-slip barcode.
type DigitableLine string

func (d DigitableLine) String() string { return string(d) }

// Formatted renders the line in the five groups printed on the slip:
// AAAAA.AAAAA BBBBB.BBBBBB CCCCC.CCCCCC D EEEEEEEEEEEEEE
func (d DigitableLine) Formatted() string {
	s := string(d)
	if len(s) != DigitableLineLength {
		return s
	}
	return s[0:5] + "." + s[5:10] + " " +
		s[10:15] + "." + s[15:21] + " " +
		s[21:26] + "." + s[26:32] + " " +
		s[32:33] + " " +
		s[33:47]
}
