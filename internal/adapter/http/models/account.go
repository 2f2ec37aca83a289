package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	HolderName     string          `json:"holderName"`
	AccountKind    string          `json:"accountKind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}
	kind := strings.ToUpper(strings.TrimSpace(r.AccountKind))
	if kind != "SAVINGS" && kind != "CURRENT" {
		errs = append(errs, "accountKind must be SAVINGS or CURRENT")
	}
	if r.OpeningBalance.IsNegative() {
		errs = append(errs, "openingBalance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AccountResponse struct {
	AccountNumber    int64           `json:"accountNumber"`
	HolderName       string          `json:"holderName"`
	AccountKind      string          `json:"accountKind"`
	Balance          decimal.Decimal `json:"balance"`
	OutstandingLoan  decimal.Decimal `json:"outstandingLoan"`
	OpenedAt         string          `json:"openedAt"`
	TransactionCount int             `json:"transactionCount"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r AmountRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

type TransactionResponse struct {
	Sequence         int             `json:"sequence"`
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
	Note             string          `json:"note"`
	Timestamp        time.Time       `json:"timestamp"`
	Counterparty     int64           `json:"counterpartyAccount,omitempty"`
	Reference        string          `json:"reference,omitempty"`
}

type TransactionListResponse struct {
	AccountNumber int64                 `json:"accountNumber"`
	Transactions  []TransactionResponse `json:"transactions"`
}
