package domain

import "github.com/shopspring/decimal"

// Summary is a point-in-time aggregate over every account in a ledger.
type Summary struct {
	BankName             string
	AccountCount         int
	SavingsAccountCount  int
	CurrentAccountCount  int
	TotalBalance         decimal.Decimal
	TotalOutstandingLoan decimal.Decimal
	TotalLoansIssuedEver decimal.Decimal
	TransactionCount     int
}
