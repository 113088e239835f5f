// Package checkdigit implements the two weighted checksums used on
// Brazilian bank collection documents: modulo 11 (barcode digits) and
// modulo 10 (digitable line fields).
package checkdigit

import "github.com/boddenberg/boleto-barcode-go/internal/domain"

// Generator exposes both algorithms as methods. It holds no state and can
// be shared freely across goroutines.
type Generator struct{}

// Modulo11 delegates to the package-level Modulo11.
func (Generator) Modulo11(digits string) (int, error) { return Modulo11(digits) }

// Modulo10 delegates to the package-level Modulo10.
func (Generator) Modulo10(digits string) (int, error) { return Modulo10(digits) }

// Modulo11 computes the FEBRABAN modulo 11 check digit. Digits are weighted
// right to left with multipliers 2..9, cycling back to 2 after 9.
//
// A result above 9 collapses to 0, so remainders 0 and 1 both yield 0.
// That is the bank rule and must stay as is.
func Modulo11(digits string) (int, error) {
	if err := validate(digits); err != nil {
		return 0, err
	}

	sum := 0
	multiplier := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * multiplier
		multiplier++
		if multiplier > 9 {
			multiplier = 2
		}
	}

	digit := 11 - sum%11
	if digit > 9 {
		return 0, nil
	}
	return digit, nil
}

// Modulo10 computes the Luhn-style modulo 10 check digit. Multipliers
// alternate 2,1,2,1... starting with 2 at the rightmost digit; two-digit
// products are folded into the sum of their digits.
func Modulo10(digits string) (int, error) {
	if err := validate(digits); err != nil {
		return 0, err
	}

	sum := 0
	multiplier := 2
	for i := len(digits) - 1; i >= 0; i-- {
		product := int(digits[i]-'0') * multiplier
		sum += product/10 + product%10
		multiplier = 3 - multiplier
	}

	return (10 - sum%10) % 10, nil
}

func validate(digits string) error {
	if digits == "" {
		return &domain.ErrInvalidInput{Input: digits, Reason: "empty input"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return &domain.ErrInvalidInput{Input: digits, Reason: "non-digit character"}
		}
	}
	return nil
}
