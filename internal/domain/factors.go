package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// dueDateBase is day zero of the FEBRABAN due-date factor.
var dueDateBase = time.Date(1997, 10, 7, 0, 0, 0, 0, time.UTC)

const (
	minDueDateFactor = 1000
	maxDueDateFactor = 9999
	amountWidth      = 10
)

var maxAmountCents = decimal.New(1, amountWidth) // 10^10 cents

// DueDateFactor returns the 4-digit number of days between 1997-10-07 and
// the due date. Once the factor passes 9999 it restarts at 1000
// (2025-02-22 is factor 1000 again).
func DueDateFactor(due time.Time) (string, error) {
	day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(dueDateBase).Hours() / 24)

	if days < minDueDateFactor {
		return "", &ErrFormatting{Field: "due_date", Value: due.Format("2006-01-02")}
	}

	span := maxDueDateFactor - minDueDateFactor + 1
	factor := (days-minDueDateFactor)%span + minDueDateFactor
	return fmt.Sprintf("%04d", factor), nil
}

// FormatAmount renders a monetary value as 10 zero-padded digits of cents.
// Fractions of a cent are rounded half away from zero.
func FormatAmount(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", &ErrFormatting{Field: "amount", Value: amount.String()}
	}

	cents := amount.Round(2).Shift(2)
	if cents.GreaterThanOrEqual(maxAmountCents) {
		return "", &ErrFormatting{Field: "amount", Value: amount.StringFixed(2), Width: amountWidth}
	}
	return fmt.Sprintf("%0*d", amountWidth, cents.IntPart()), nil
}
