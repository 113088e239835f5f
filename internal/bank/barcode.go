package bank

import (
	"path"
	"strconv"

	"github.com/boddenberg/boleto-barcode-go/internal/checkdigit"
	"github.com/boddenberg/boleto-barcode-go/internal/domain"
)

// ValidateBarcode reports whether code is exactly 44 ASCII digits.
func ValidateBarcode(code string) error {
	if len(code) != domain.BarcodeLength {
		return &domain.ErrStructural{Length: len(code)}
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return &domain.ErrStructural{Length: len(code), Reason: "non-digit character at position " + strconv.Itoa(i)}
		}
	}
	return nil
}

// DigitableLine derives the 47-digit typed line from a barcode:
//
//	bank+currency+free[0:5]+dv10 | free[5:15]+dv10 | free[15:25]+dv10 | general dv | factor+amount
func DigitableLine(code domain.Barcode) (domain.DigitableLine, error) {
	s := string(code)
	if err := ValidateBarcode(s); err != nil {
		return "", err
	}

	f1, err := withModulo10(s[0:4] + s[19:24])
	if err != nil {
		return "", err
	}
	f2, err := withModulo10(s[24:34])
	if err != nil {
		return "", err
	}
	f3, err := withModulo10(s[34:44])
	if err != nil {
		return "", err
	}

	return domain.DigitableLine(f1 + f2 + f3 + s[4:5] + s[5:19]), nil
}

func withModulo10(field string) (string, error) {
	dv, err := checkdigit.Modulo10(field)
	if err != nil {
		return "", err
	}
	return field + strconv.Itoa(dv), nil
}

// LogoPath maps a bank code to its logo resource, e.g. base/104.png.
// Nothing is read from disk.
func LogoPath(base, code string) string {
	return path.Join(base, code+".png")
}
