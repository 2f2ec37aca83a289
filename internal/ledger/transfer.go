package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/banking-ledger/internal/domain"
)

// TransferReceipt describes one committed transfer. Both legs in the account
// histories carry the same reference.
type TransferReceipt struct {
	Reference   string
	From        AccountSnapshot
	To          AccountSnapshot
	Amount      decimal.Decimal
	CompletedAt time.Time
}

// Transfer moves amount between two accounts with all-or-nothing semantics.
// Both account locks are taken in ascending account number order before the
// debit, so concurrent transfers cannot deadlock; the debit and credit commit
// as one logical transaction. A failed debit leaves both accounts untouched.
func (l *Ledger) Transfer(fromNumber, toNumber int64, amount decimal.Decimal) (TransferReceipt, error) {
	if fromNumber == toNumber {
		return TransferReceipt{}, domain.ErrSameAccountTransfer
	}

	src, err := l.Find(fromNumber)
	if err != nil {
		return TransferReceipt{}, err
	}
	dst, err := l.Find(toNumber)
	if err != nil {
		return TransferReceipt{}, err
	}

	first, second := src, dst
	if second.Number() < first.Number() {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	reference := uuid.NewString()
	if err := src.debitLocked(amount, domain.TransactionTransferOut,
		fmt.Sprintf("transfer of %s to account %d", amount.StringFixed(2), toNumber),
		toNumber, reference); err != nil {
		return TransferReceipt{}, err
	}

	// The credit cannot fail once the debit committed: the amount is known
	// positive and deposits have no upper bound.
	if err := dst.creditLocked(amount, domain.TransactionTransferIn,
		fmt.Sprintf("transfer of %s from account %d", amount.StringFixed(2), fromNumber),
		fromNumber, reference); err != nil {
		src.rollbackDebitLocked(amount)
		return TransferReceipt{}, err
	}

	return TransferReceipt{
		Reference:   reference,
		From:        src.snapshotLocked(),
		To:          dst.snapshotLocked(),
		Amount:      amount,
		CompletedAt: l.clock.Now(),
	}, nil
}

// rollbackDebitLocked undoes the last appended debit. Only the transfer path
// uses it, and only for a destination-side failure introduced in the future;
// today the credit leg is unconditional.
func (a *Account) rollbackDebitLocked(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
	a.history = a.history[:len(a.history)-1]
}
