package observability_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/infra/observability"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := observability.NewMetrics()

	m.RecordEncode("104", time.Millisecond, nil)
	m.RecordEncode("104", time.Millisecond, nil)
	m.RecordEncode("104", time.Millisecond, nil)
	m.RecordEncode("104", time.Millisecond, &domain.ErrStructural{Length: 45})

	snap := m.Snapshot()

	assert.Equal(t, int64(4), snap.TotalEncodes)
	assert.Equal(t, int64(3), snap.Succeeded)
	assert.Equal(t, int64(1), snap.Failed)
	assert.InDelta(t, 0.75, snap.SuccessRate, 1e-9)
	assert.Equal(t, map[string]int64{"structural": 1}, snap.ErrorsByKind)
}

func TestMetrics_SnapshotEmpty(t *testing.T) {
	snap := observability.NewMetrics().Snapshot()

	assert.Zero(t, snap.TotalEncodes)
	assert.Zero(t, snap.SuccessRate)
	assert.Empty(t, snap.ErrorsByKind)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&domain.ErrFormatting{Field: "account_number"}, "formatting"},
		{fmt.Errorf("wrapped: %w", &domain.ErrStructural{}), "structural"},
		{&domain.ErrInvalidInput{}, "invalid_input"},
		{&domain.ErrValidation{}, "validation"},
		{&domain.ErrNotFound{}, "not_found"},
		{context.Canceled, "canceled"},
		{errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, observability.ErrorKind(tt.err), "%v", tt.err)
	}
}
