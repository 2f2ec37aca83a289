package ledger

import (
	"strings"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"

	"github.com/api-sage/banking-ledger/internal/domain"
)

const firstAccountNumber = 1001

// Ledger is the registry owning every account, the account numbering sequence
// and the cross-account loan aggregate. Account creation is serialized under
// the registry lock so concurrent creations never mint the same number.
type Ledger struct {
	name                string
	clock               Clock
	loanLimitMultiplier decimal.Decimal

	mu                deadlock.RWMutex
	nextAccountNumber int64
	accounts          map[int64]*Account
	order             []int64
	totalLoansIssued  decimal.Decimal
}

// NewLedger builds an empty ledger. A nil clock falls back to the system
// clock; a non-positive loan limit multiplier falls back to 5.
func NewLedger(name string, clock Clock, loanLimitMultiplier int64) *Ledger {
	if clock == nil {
		clock = SystemClock()
	}
	if loanLimitMultiplier <= 0 {
		loanLimitMultiplier = 5
	}
	return &Ledger{
		name:                name,
		clock:               clock,
		loanLimitMultiplier: decimal.NewFromInt(loanLimitMultiplier),
		nextAccountNumber:   firstAccountNumber,
		accounts:            make(map[int64]*Account),
		totalLoansIssued:    decimal.Zero,
	}
}

func (l *Ledger) Name() string { return l.name }

// CreateAccount validates, opens the account and assigns the next account
// number. The numbering counter moves only on success.
func (l *Ledger) CreateAccount(holderName string, kind domain.AccountKind, openingBalance decimal.Decimal) (*Account, error) {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, domain.ErrInvalidHolderName
	}
	if kind != domain.AccountKindSavings && kind != domain.AccountKindCurrent {
		return nil, domain.ErrInvalidAccountKind
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := openAccount(l.nextAccountNumber, holderName, kind, openingBalance, l.clock)
	if err != nil {
		return nil, err
	}

	l.accounts[account.Number()] = account
	l.order = append(l.order, account.Number())
	l.nextAccountNumber++
	return account, nil
}

// Find returns the live account; callers share the reference and every
// mutation goes through the account's own lock.
func (l *Ledger) Find(accountNumber int64) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	account, ok := l.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Accounts returns all accounts in creation order.
func (l *Ledger) Accounts() []*Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Account, 0, len(l.order))
	for _, number := range l.order {
		out = append(out, l.accounts[number])
	}
	return out
}

func (l *Ledger) TotalLoansIssued() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalLoansIssued
}

// IssueLoan issues principal on the account and raises the ledger-wide
// cumulative counter. The counter never moves on failure or on repayment.
func (l *Ledger) IssueLoan(accountNumber int64, amount decimal.Decimal) (AccountSnapshot, error) {
	account, err := l.Find(accountNumber)
	if err != nil {
		return AccountSnapshot{}, err
	}

	snapshot, err := account.IssueLoan(amount, l.loanLimitMultiplier)
	if err != nil {
		return AccountSnapshot{}, err
	}

	l.mu.Lock()
	l.totalLoansIssued = l.totalLoansIssued.Add(amount)
	l.mu.Unlock()
	return snapshot, nil
}

// RepayLoan repays on the account; the applied amount caps at the outstanding
// principal and is returned alongside the post-repayment snapshot.
func (l *Ledger) RepayLoan(accountNumber int64, amount decimal.Decimal) (decimal.Decimal, AccountSnapshot, error) {
	account, err := l.Find(accountNumber)
	if err != nil {
		return decimal.Zero, AccountSnapshot{}, err
	}
	return account.RepayLoan(amount)
}

// ApplyYearlyInterest credits every savings account in creation order and
// returns how many accounts were credited. Zero is a valid outcome.
func (l *Ledger) ApplyYearlyInterest(rate decimal.Decimal) (int, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return 0, domain.ErrInvalidAmount
	}

	credited := 0
	for _, account := range l.Accounts() {
		if _, ok, _ := account.CreditInterest(rate); ok {
			credited++
		}
	}
	return credited, nil
}

// Summarize scans every account once and aggregates balances, loans, per-kind
// counts and transaction counts. Pure read.
func (l *Ledger) Summarize() domain.Summary {
	summary := domain.Summary{
		BankName:             l.name,
		TotalBalance:         decimal.Zero,
		TotalOutstandingLoan: decimal.Zero,
	}

	for _, account := range l.Accounts() {
		snapshot := account.Snapshot()
		summary.AccountCount++
		if snapshot.Kind == domain.AccountKindSavings {
			summary.SavingsAccountCount++
		} else {
			summary.CurrentAccountCount++
		}
		summary.TotalBalance = summary.TotalBalance.Add(snapshot.Balance)
		summary.TotalOutstandingLoan = summary.TotalOutstandingLoan.Add(snapshot.OutstandingLoan)
		summary.TransactionCount += snapshot.TransactionCount
	}

	summary.TotalLoansIssuedEver = l.TotalLoansIssued()
	return summary
}
