package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DEFAULT_BANK_CODE", "MAX_CONCURRENCY", "REQUEST_TIMEOUT", "JWT_SECRET"} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "104", cfg.DefaultBankCode)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_BATCH_SIZE", "10")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("MAX_CONCURRENCY", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 10, cfg.MaxBatchSize)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrency)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nexport BOLETO_TEST_A=\"alpha\"\nBOLETO_TEST_B = beta\nnot a pair\nBOLETO_TEST_C=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BOLETO_TEST_C", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("BOLETO_TEST_A")
		os.Unsetenv("BOLETO_TEST_B")
	})

	require.NoError(t, config.LoadDotEnv(path))

	assert.Equal(t, "alpha", os.Getenv("BOLETO_TEST_A"))
	assert.Equal(t, "beta", os.Getenv("BOLETO_TEST_B"))
	assert.Equal(t, "from-env", os.Getenv("BOLETO_TEST_C"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.Error(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "nope")))
}
