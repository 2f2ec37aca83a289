package ledger

import (
	"fmt"
	"time"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"

	"github.com/api-sage/banking-ledger/internal/domain"
)

// Account owns a balance, an outstanding loan and an append-only transaction
// history. Every mutation validates, applies and appends exactly one record
// under the account's lock, or changes nothing and returns a domain error.
type Account struct {
	number   int64
	holder   string
	kind     domain.AccountKind
	openedAt time.Time
	clock    Clock

	mu              deadlock.Mutex
	balance         decimal.Decimal
	outstandingLoan decimal.Decimal
	history         []domain.TransactionRecord
}

// AccountSnapshot is a copy of an account's state taken under its lock.
type AccountSnapshot struct {
	Number           int64
	HolderName       string
	Kind             domain.AccountKind
	Balance          decimal.Decimal
	OutstandingLoan  decimal.Decimal
	OpenedAt         time.Time
	TransactionCount int
}

// openAccount is called by the ledger once registry-level validation passed.
// It fails, creating nothing, if the opening balance is under the kind minimum.
func openAccount(number int64, holder string, kind domain.AccountKind, openingBalance decimal.Decimal, clock Clock) (*Account, error) {
	if openingBalance.LessThan(kind.MinimumBalance()) {
		return nil, domain.ErrBelowMinimumBalance
	}

	a := &Account{
		number:          number,
		holder:          holder,
		kind:            kind,
		openedAt:        clock.Now(),
		clock:           clock,
		balance:         openingBalance,
		outstandingLoan: decimal.Zero,
	}
	a.appendLocked(domain.TransactionAccountOpened, openingBalance,
		fmt.Sprintf("%s account opened with %s", kind, openingBalance.StringFixed(2)), 0, "")
	return a, nil
}

func (a *Account) Number() int64 { return a.number }

func (a *Account) HolderName() string { return a.holder }

func (a *Account) Kind() domain.AccountKind { return a.kind }

func (a *Account) OpenedAt() time.Time { return a.openedAt }

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) OutstandingLoan() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outstandingLoan
}

// History returns a copy of the account's transaction records in order.
func (a *Account) History() []domain.TransactionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.TransactionRecord, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) Snapshot() AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// Deposit credits the account. The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) (AccountSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.creditLocked(amount, domain.TransactionDeposit,
		fmt.Sprintf("deposit of %s", amount.StringFixed(2)), 0, ""); err != nil {
		return AccountSnapshot{}, err
	}
	return a.snapshotLocked(), nil
}

// Withdraw debits the account. Amount validity is checked before the minimum
// balance rule; a withdrawal leaving the balance exactly at the minimum
// succeeds.
func (a *Account) Withdraw(amount decimal.Decimal) (AccountSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.debitLocked(amount, domain.TransactionWithdrawal,
		fmt.Sprintf("withdrawal of %s", amount.StringFixed(2)), 0, ""); err != nil {
		return AccountSnapshot{}, err
	}
	return a.snapshotLocked(), nil
}

// CreditInterest credits balance*rate rounded half-up to 2 places. It applies
// only to savings accounts; on a current account it is a no-op, not an error.
func (a *Account) CreditInterest(rate decimal.Decimal) (decimal.Decimal, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kind != domain.AccountKindSavings {
		return decimal.Zero, false, nil
	}

	interest := a.balance.Mul(rate).Round(2)
	a.balance = a.balance.Add(interest)
	a.appendLocked(domain.TransactionInterest, interest,
		fmt.Sprintf("yearly interest of %s at rate %s", interest.StringFixed(2), rate.String()), 0, "")
	return interest, true, nil
}

// IssueLoan credits the principal and raises the outstanding loan. The limit is
// evaluated against the balance before crediting.
func (a *Account) IssueLoan(amount decimal.Decimal, limitMultiplier decimal.Decimal) (AccountSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) {
		return AccountSnapshot{}, domain.ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance.Mul(limitMultiplier)) {
		return AccountSnapshot{}, domain.ErrLoanLimitExceeded
	}

	a.outstandingLoan = a.outstandingLoan.Add(amount)
	a.balance = a.balance.Add(amount)
	a.appendLocked(domain.TransactionLoanIssued, amount,
		fmt.Sprintf("loan of %s issued, outstanding %s", amount.StringFixed(2), a.outstandingLoan.StringFixed(2)), 0, "")
	return a.snapshotLocked(), nil
}

// RepayLoan debits min(amount, outstanding loan); a request beyond the
// outstanding principal is capped, never charged past it. The full requested
// amount must still be covered by the balance.
func (a *Account) RepayLoan(amount decimal.Decimal) (decimal.Decimal, AccountSnapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.outstandingLoan.IsZero() {
		return decimal.Zero, AccountSnapshot{}, domain.ErrNoOutstandingLoan
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, AccountSnapshot{}, domain.ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return decimal.Zero, AccountSnapshot{}, domain.ErrInsufficientFunds
	}

	applied := decimal.Min(amount, a.outstandingLoan)
	a.balance = a.balance.Sub(applied)
	a.outstandingLoan = a.outstandingLoan.Sub(applied)
	a.appendLocked(domain.TransactionLoanRepayment, applied,
		fmt.Sprintf("loan repayment of %s, outstanding %s", applied.StringFixed(2), a.outstandingLoan.StringFixed(2)), 0, "")
	return applied, a.snapshotLocked(), nil
}

// creditLocked and debitLocked are the shared primitives behind deposits,
// withdrawals and transfer legs. Callers hold a.mu.

func (a *Account) creditLocked(amount decimal.Decimal, kind domain.TransactionKind, note string, counterparty int64, reference string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.appendLocked(kind, amount, note, counterparty, reference)
	return nil
}

func (a *Account) debitLocked(amount decimal.Decimal, kind domain.TransactionKind, note string, counterparty int64, reference string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if a.balance.Sub(amount).LessThan(a.kind.MinimumBalance()) {
		return domain.ErrBelowMinimumBalance
	}
	a.balance = a.balance.Sub(amount)
	a.appendLocked(kind, amount, note, counterparty, reference)
	return nil
}

func (a *Account) appendLocked(kind domain.TransactionKind, amount decimal.Decimal, note string, counterparty int64, reference string) {
	a.history = append(a.history, domain.TransactionRecord{
		Sequence:         len(a.history) + 1,
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: a.balance,
		Note:             note,
		Timestamp:        a.clock.Now(),
		Counterparty:     counterparty,
		Reference:        reference,
	})
}

func (a *Account) snapshotLocked() AccountSnapshot {
	return AccountSnapshot{
		Number:           a.number,
		HolderName:       a.holder,
		Kind:             a.kind,
		Balance:          a.balance,
		OutstandingLoan:  a.outstandingLoan,
		OpenedAt:         a.openedAt,
		TransactionCount: len(a.history),
	}
}
