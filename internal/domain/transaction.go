package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionAccountOpened TransactionKind = "ACCOUNT_OPENED"
	TransactionDeposit       TransactionKind = "DEPOSIT"
	TransactionWithdrawal    TransactionKind = "WITHDRAWAL"
	TransactionTransferOut   TransactionKind = "TRANSFER_OUT"
	TransactionTransferIn    TransactionKind = "TRANSFER_IN"
	TransactionInterest      TransactionKind = "INTEREST"
	TransactionLoanIssued    TransactionKind = "LOAN_ISSUED"
	TransactionLoanRepayment TransactionKind = "LOAN_REPAYMENT"
)

// TransactionRecord is one immutable, append-only fact in an account's history.
// Sequence starts at 1 and is unique within the owning account. Counterparty and
// Reference are set only on transfer legs; both legs of one transfer share the
// same reference.
type TransactionRecord struct {
	Sequence         int
	Kind             TransactionKind
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
	Note             string
	Timestamp        time.Time
	Counterparty     int64
	Reference        string
}

// SignedAmount is the record's effect on the balance: positive for credits,
// negative for debits, zero is never produced by a committed operation except a
// zero-interest credit.
func (r TransactionRecord) SignedAmount() decimal.Decimal {
	switch r.Kind {
	case TransactionWithdrawal, TransactionTransferOut, TransactionLoanRepayment:
		return r.Amount.Neg()
	default:
		return r.Amount
	}
}
