package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	FromAccountNumber int64           `json:"fromAccountNumber"`
	ToAccountNumber   int64           `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.FromAccountNumber <= 0 {
		errs = append(errs, "fromAccountNumber is required")
	}
	if r.ToAccountNumber <= 0 {
		errs = append(errs, "toAccountNumber is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	Reference         string          `json:"reference"`
	FromAccountNumber int64           `json:"fromAccountNumber"`
	ToAccountNumber   int64           `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
	FromBalance       decimal.Decimal `json:"fromBalance"`
	ToBalance         decimal.Decimal `json:"toBalance"`
	CompletedAt       string          `json:"completedAt"`
}
