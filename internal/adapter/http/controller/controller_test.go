package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/banking-ledger/internal/adapter/http/controller"
	"github.com/api-sage/banking-ledger/internal/adapter/http/router"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/usecase/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	bank := ledger.NewLedger("Test Bank", nil, 5)
	interestService, err := services.NewInterestService(bank, "0.04")
	require.NoError(t, err)

	return router.New(
		controller.NewAccountController(services.NewAccountService(bank)),
		controller.NewTransferController(services.NewTransferService(bank)),
		controller.NewLoanController(services.NewLoanService(bank)),
		controller.NewBankController(interestService, services.NewSummaryService(bank)),
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestOpenAccountEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	t.Run("creates an account", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/accounts",
			`{"holderName":"Alice","accountKind":"SAVINGS","openingBalance":"5000"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := envelope(t, rec)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(1001), data["accountNumber"])
	})

	t.Run("rejects below-minimum savings opening", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/accounts",
			`{"holderName":"Carol","accountKind":"SAVINGS","openingBalance":"999"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects unknown account kind", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/accounts",
			`{"holderName":"Carol","accountKind":"PREMIUM","openingBalance":"5000"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/accounts",
		`{"holderName":"Alice","accountKind":"SAVINGS","openingBalance":"5000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, handler, http.MethodPost, "/accounts",
		`{"holderName":"Bob","accountKind":"CURRENT","openingBalance":"100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/accounts/1001/deposits", `{"amount":"500"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/accounts/1001/withdrawals", `{"amount":"250"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/transfers",
		`{"fromAccountNumber":1001,"toAccountNumber":1002,"amount":"1000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/loans", `{"accountNumber":1002,"amount":"2000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/interest-runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := envelope(t, rec)
	assert.Equal(t, float64(1), body["data"].(map[string]any)["accountsCredited"])

	rec = doJSON(t, handler, http.MethodGet, "/accounts/1001/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	transactions := envelope(t, rec)["data"].(map[string]any)["transactions"].([]any)
	// opened, deposit, withdrawal, transfer out, interest
	assert.Len(t, transactions, 5)

	rec = doJSON(t, handler, http.MethodGet, "/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := envelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(2), summary["accountCount"])
}

func TestErrorStatuses(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/accounts",
		`{"holderName":"Alice","accountKind":"SAVINGS","openingBalance":"1500"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("unknown account is 404", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/accounts/9999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed account number is 400", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/accounts/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("minimum balance breach is 422", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/accounts/1001/withdrawals", `{"amount":"501"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("same account transfer is 400", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/transfers",
			`{"fromAccountNumber":1001,"toAccountNumber":1001,"amount":"10"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repaying with no loan is 422", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/loans/repayments",
			`{"accountNumber":1001,"amount":"10"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("invalid body is 400", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/accounts", `{"holderName":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
