package ledger_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/banking-ledger/internal/domain"
)

func TestCreateAccountValidation(t *testing.T) {
	t.Run("blank holder name fails", func(t *testing.T) {
		bank := newTestLedger(t)
		_, err := bank.CreateAccount("   ", domain.AccountKindSavings, dec("5000"))
		require.ErrorIs(t, err, domain.ErrInvalidHolderName)
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		bank := newTestLedger(t)
		_, err := bank.CreateAccount("Alice", domain.AccountKind("FIXED_DEPOSIT"), dec("5000"))
		require.ErrorIs(t, err, domain.ErrInvalidAccountKind)
	})

	t.Run("numbering starts at 1001 and skips failed attempts", func(t *testing.T) {
		bank := newTestLedger(t)

		first, err := bank.CreateAccount("Alice", domain.AccountKindSavings, dec("5000"))
		require.NoError(t, err)
		assert.Equal(t, int64(1001), first.Number())

		_, err = bank.CreateAccount("Carol", domain.AccountKindSavings, dec("10"))
		require.ErrorIs(t, err, domain.ErrBelowMinimumBalance)

		second, err := bank.CreateAccount("Bob", domain.AccountKindCurrent, dec("0"))
		require.NoError(t, err)
		assert.Equal(t, int64(1002), second.Number())
	})
}

func TestFind(t *testing.T) {
	bank := newTestLedger(t)
	account, err := bank.CreateAccount("Alice", domain.AccountKindSavings, dec("5000"))
	require.NoError(t, err)

	found, err := bank.Find(account.Number())
	require.NoError(t, err)
	assert.Equal(t, account.Number(), found.Number())

	_, err = bank.Find(9999)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestApplyYearlyInterest(t *testing.T) {
	t.Run("credits only savings accounts", func(t *testing.T) {
		bank := newTestLedger(t)
		savings, err := bank.CreateAccount("Alice", domain.AccountKindSavings, dec("1000"))
		require.NoError(t, err)
		current, err := bank.CreateAccount("Bob", domain.AccountKindCurrent, dec("1000"))
		require.NoError(t, err)

		credited, err := bank.ApplyYearlyInterest(dec("0.04"))
		require.NoError(t, err)
		assert.Equal(t, 1, credited)
		assert.True(t, savings.Balance().Equal(dec("1040")))
		assert.True(t, current.Balance().Equal(dec("1000")))
	})

	t.Run("zero savings accounts credits nothing", func(t *testing.T) {
		bank := newTestLedger(t)
		_, err := bank.CreateAccount("Bob", domain.AccountKindCurrent, dec("1000"))
		require.NoError(t, err)

		credited, err := bank.ApplyYearlyInterest(dec("0.04"))
		require.NoError(t, err)
		assert.Equal(t, 0, credited)
	})

	t.Run("non-positive rate fails", func(t *testing.T) {
		bank := newTestLedger(t)
		_, err := bank.ApplyYearlyInterest(decimal.Zero)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestTotalLoansIssuedNeverDecreases(t *testing.T) {
	bank := newTestLedger(t)
	account, err := bank.CreateAccount("Alice", domain.AccountKindSavings, dec("2000"))
	require.NoError(t, err)

	_, err = bank.IssueLoan(account.Number(), dec("4000"))
	require.NoError(t, err)
	_, err = bank.IssueLoan(account.Number(), dec("1000"))
	require.NoError(t, err)
	assert.True(t, bank.TotalLoansIssued().Equal(dec("5000")))

	_, _, err = bank.RepayLoan(account.Number(), dec("3000"))
	require.NoError(t, err)
	assert.True(t, bank.TotalLoansIssued().Equal(dec("5000")))
}

func TestSummarize(t *testing.T) {
	bank := newTestLedger(t)
	alice, err := bank.CreateAccount("Alice", domain.AccountKindSavings, dec("5000"))
	require.NoError(t, err)
	_, err = bank.CreateAccount("Bob", domain.AccountKindCurrent, dec("300"))
	require.NoError(t, err)
	_, err = bank.IssueLoan(alice.Number(), dec("2000"))
	require.NoError(t, err)

	summary := bank.Summarize()
	assert.Equal(t, "Test Bank", summary.BankName)
	assert.Equal(t, 2, summary.AccountCount)
	assert.Equal(t, 1, summary.SavingsAccountCount)
	assert.Equal(t, 1, summary.CurrentAccountCount)
	assert.True(t, summary.TotalBalance.Equal(dec("7300")))
	assert.True(t, summary.TotalOutstandingLoan.Equal(dec("2000")))
	assert.True(t, summary.TotalLoansIssuedEver.Equal(dec("2000")))
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestConcurrentAccountCreationUniqueNumbers(t *testing.T) {
	bank := newTestLedger(t)
	const workers = 64

	numbers := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			account, err := bank.CreateAccount("Holder", domain.AccountKindCurrent, dec("100"))
			if err != nil {
				t.Error(err)
				return
			}
			numbers[slot] = account.Number()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, workers)
	for _, number := range numbers {
		_, dup := seen[number]
		require.False(t, dup, "duplicate account number %d", number)
		seen[number] = struct{}{}
	}
	assert.Len(t, seen, workers)
}
