package models

import "github.com/shopspring/decimal"

type InterestRunResponse struct {
	Rate             decimal.Decimal `json:"rate"`
	AccountsCredited int             `json:"accountsCredited"`
}

type SummaryResponse struct {
	BankName             string          `json:"bankName"`
	AccountCount         int             `json:"accountCount"`
	SavingsAccountCount  int             `json:"savingsAccountCount"`
	CurrentAccountCount  int             `json:"currentAccountCount"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	TotalOutstandingLoan decimal.Decimal `json:"totalOutstandingLoan"`
	TotalLoansIssuedEver decimal.Decimal `json:"totalLoansIssuedEver"`
	TransactionCount     int             `json:"transactionCount"`
}
