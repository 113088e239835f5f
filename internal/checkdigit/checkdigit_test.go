package checkdigit_test

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/boddenberg/boleto-barcode-go/internal/checkdigit"
	"github.com/boddenberg/boleto-barcode-go/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulo11(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{"agency identifier", "005507", 7},
		{"free field", "005507700010004000000019", 0},
		{"full barcode without general digit", "1049324200000321120055077000100040000000190", 1},
		{"single digit", "5", 1},
		// Remainder 0 gives 11 and remainder 1 gives 10; the bank rule maps both to 0.
		{"remainder zero collapses to zero", "0", 0},
		{"remainder one collapses to zero", "6", 0},
		{"ninth position still weighted 9", "10000000", 2},
		{"multiplier wraps back to 2", "100000000", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkdigit.Modulo11(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModulo10(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{"digitable field 1", "104900550", 5},
		{"digitable field 2", "7700010004", 8},
		{"digitable field 3", "0000000190", 9},
		{"luhn reference", "7992739871", 3},
		{"zero remainder maps to zero", "0", 0},
		{"product folded", "5", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkdigit.Modulo10(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	for _, in := range []string{"", "12a4", " 123", "-1", "１２"} {
		_, err := checkdigit.Modulo11(in)
		var invalid *domain.ErrInvalidInput
		require.True(t, errors.As(err, &invalid), "modulo11(%q) should fail with ErrInvalidInput", in)

		_, err = checkdigit.Modulo10(in)
		require.True(t, errors.As(err, &invalid), "modulo10(%q) should fail with ErrInvalidInput", in)
	}
}

func TestResultAlwaysSingleDigit(t *testing.T) {
	rng := rand.New(rand.NewSource(104))

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(60)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = byte('0' + rng.Intn(10))
		}
		digits := string(buf)

		m11, err := checkdigit.Modulo11(digits)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m11, 0)
		assert.LessOrEqual(t, m11, 9)

		m10, err := checkdigit.Modulo10(digits)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m10, 0)
		assert.LessOrEqual(t, m10, 9)
	}
}

func TestModulo11_OrderSensitive(t *testing.T) {
	a, err := checkdigit.Modulo11("12")
	require.NoError(t, err)
	b, err := checkdigit.Modulo11("21")
	require.NoError(t, err)

	assert.Equal(t, 4, a)
	assert.Equal(t, 3, b)
}

func TestGenerator_SharedAcrossGoroutines(t *testing.T) {
	var gen checkdigit.Generator
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			digits := strconv.Itoa(100000 + i)
			want, _ := checkdigit.Modulo11(digits)
			got, err := gen.Modulo11(digits)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}(i)
	}
	wg.Wait()
}
