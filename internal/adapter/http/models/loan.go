package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type LoanRequest struct {
	AccountNumber int64           `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r LoanRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoanResponse struct {
	AccountNumber   int64           `json:"accountNumber"`
	IssuedAmount    decimal.Decimal `json:"issuedAmount"`
	Balance         decimal.Decimal `json:"balance"`
	OutstandingLoan decimal.Decimal `json:"outstandingLoan"`
}

type RepaymentResponse struct {
	AccountNumber   int64           `json:"accountNumber"`
	RequestedAmount decimal.Decimal `json:"requestedAmount"`
	AppliedAmount   decimal.Decimal `json:"appliedAmount"`
	Balance         decimal.Decimal `json:"balance"`
	OutstandingLoan decimal.Decimal `json:"outstandingLoan"`
}
