package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/boddenberg/boleto-barcode-go/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBanks(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	rec := do(router, http.MethodGet, "/v1/banks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list domain.ListResponse[domain.BankInfo]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "104", list.Data[0].Code)
	assert.Equal(t, "SIGCB", list.Data[0].Model)
}

func TestGetBank(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	rec := do(router, http.MethodGet, "/v1/banks/104", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info domain.BankInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.Equal(t, "/static/img/banks/104.png", info.LogoPath)

	rec = do(router, http.MethodGet, "/v1/banks/341", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWallet(t *testing.T) {
	router, _ := newRouter(handler.RouterConfig{})

	tests := []struct {
		target string
		status int
		label  string
	}{
		{"/v1/banks/104/wallets/1", http.StatusOK, "RG"},
		{"/v1/banks/104/wallets/2", http.StatusOK, "SR"},
		{"/v1/banks/104/wallets/x", http.StatusBadRequest, ""},
		{"/v1/banks/999/wallets/1", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(router, http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code)
			if tt.label == "" {
				return
			}
			var w domain.WalletInfo
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&w))
			assert.Equal(t, tt.label, w.Label)
		})
	}
}
