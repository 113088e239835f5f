package domain

import "github.com/shopspring/decimal"

// ============================================================
// Barcode encoding API types
// ============================================================

// EncodeRequest is the body for POST /v1/boletos/barcode.
// Either DueDate or DueDateFactor must be set, and either Amount or
// FormattedAmount.
type EncodeRequest struct {
	BankCode         string           `json:"bankCode,omitempty"` // empty = default bank
	Beneficiary      string           `json:"beneficiary,omitempty"`
	Agency           int              `json:"agency,omitempty"`
	AgencyDigit      string           `json:"agencyDigit,omitempty"`
	AccountNumber    int              `json:"accountNumber"`
	AccountDigit     string           `json:"accountDigit,omitempty"`
	Wallet           int              `json:"wallet"`
	TrackingNumber   int64            `json:"trackingNumber"`
	AgencyIdentifier int              `json:"agencyIdentifier"`
	DueDate          string           `json:"dueDate,omitempty"` // YYYY-MM-DD
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	DueDateFactor    string           `json:"dueDateFactor,omitempty"`   // 4 digits, pre-formatted
	FormattedAmount  string           `json:"formattedAmount,omitempty"` // 10 digits, pre-formatted
	CurrencyCode     *int             `json:"currencyCode,omitempty"`    // default 9 (Real)
}

// Emissor extracts the issuer profile from the request.
func (r *EncodeRequest) Emissor() Emissor {
	return Emissor{
		Beneficiary:      r.Beneficiary,
		Agency:           r.Agency,
		AgencyDigit:      r.AgencyDigit,
		AccountNumber:    r.AccountNumber,
		AccountDigit:     r.AccountDigit,
		Wallet:           r.Wallet,
		TrackingNumber:   r.TrackingNumber,
		AgencyIdentifier: r.AgencyIdentifier,
	}
}

// EncodeResult is returned by POST /v1/boletos/barcode.
type EncodeResult struct {
	BankCode               string `json:"bankCode"`
	Barcode                string `json:"barcode"`
	DigitableLine          string `json:"digitableLine"`
	DigitableLineFormatted string `json:"digitableLineFormatted"`
	WalletLabel            string `json:"walletLabel"`    // RG, SR
	TrackingNumber         string `json:"trackingNumber"` // formatted nosso número
	AccountNumber          string `json:"accountNumber"`
	AgencyIdentifier       string `json:"agencyIdentifier"`
	DueDateFactor          string `json:"dueDateFactor"`
	FormattedAmount        string `json:"formattedAmount"`
	LogoPath               string `json:"logoPath"`
}

// BatchEncodeRequest is the body for POST /v1/boletos/barcode/batch.
type BatchEncodeRequest struct {
	Items []EncodeRequest `json:"items"`
}

// BatchItemResult holds the outcome of one batch item. Exactly one of
// Result and Error is set.
type BatchItemResult struct {
	Index  int           `json:"index"`
	Result *EncodeResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// BatchEncodeResult is returned by POST /v1/boletos/barcode/batch.
type BatchEncodeResult struct {
	BatchID   string            `json:"batchId"`
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []BatchItemResult `json:"items"`
}

// ============================================================
// Bank profile API types
// ============================================================

// BankInfo describes a supported bank profile.
type BankInfo struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Model    string       `json:"model"`
	LogoPath string       `json:"logoPath"`
	Wallets  []WalletInfo `json:"wallets"`
}

// WalletInfo is the bank-specific classification of a wallet code.
type WalletInfo struct {
	Wallet     int    `json:"wallet"`
	Label      string `json:"label"`
	Registered bool   `json:"registered"`
}
