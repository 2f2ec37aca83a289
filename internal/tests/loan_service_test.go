package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/domain"
	"github.com/api-sage/banking-ledger/internal/usecase/services"
)

func TestLoanServiceValidationError(t *testing.T) {
	svc := services.NewLoanService(newBank())

	_, err := svc.IssueLoan(context.Background(), models.LoanRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty loan request")
	}
}

func TestLoanServiceIssueAndRepay(t *testing.T) {
	bank := newBank()
	seedTwoAccounts(t, bank)
	svc := services.NewLoanService(bank)

	issued, err := svc.IssueLoan(context.Background(), models.LoanRequest{
		AccountNumber: 1001,
		Amount:        decimal.NewFromInt(10000),
	})
	if err != nil {
		t.Fatalf("issue loan: %v", err)
	}
	if !issued.Data.OutstandingLoan.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected outstanding loan 10000, got %s", issued.Data.OutstandingLoan)
	}
	if !bank.TotalLoansIssued().Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected total loans issued 10000, got %s", bank.TotalLoansIssued())
	}

	repaid, err := svc.RepayLoan(context.Background(), models.LoanRequest{
		AccountNumber: 1001,
		Amount:        decimal.NewFromInt(12000),
	})
	if err != nil {
		t.Fatalf("repay loan: %v", err)
	}
	if !repaid.Data.AppliedAmount.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected applied amount capped at 10000, got %s", repaid.Data.AppliedAmount)
	}
	if !repaid.Data.OutstandingLoan.IsZero() {
		t.Fatalf("expected outstanding loan zero, got %s", repaid.Data.OutstandingLoan)
	}
	if !bank.TotalLoansIssued().Equal(decimal.NewFromInt(10000)) {
		t.Fatal("repayment must not reduce the cumulative issued counter")
	}
}

func TestLoanServiceLimitExceeded(t *testing.T) {
	bank := newBank()
	seedTwoAccounts(t, bank)
	svc := services.NewLoanService(bank)

	response, err := svc.IssueLoan(context.Background(), models.LoanRequest{
		AccountNumber: 1001,
		Amount:        decimal.NewFromInt(25001),
	})
	if err != domain.ErrLoanLimitExceeded {
		t.Fatalf("expected ErrLoanLimitExceeded, got %v", err)
	}
	if response.Message != "Loan limit exceeded" {
		t.Fatalf("unexpected message %q", response.Message)
	}
}

func TestLoanServiceRepayWithoutLoan(t *testing.T) {
	bank := newBank()
	seedTwoAccounts(t, bank)
	svc := services.NewLoanService(bank)

	_, err := svc.RepayLoan(context.Background(), models.LoanRequest{
		AccountNumber: 1002,
		Amount:        decimal.NewFromInt(50),
	})
	if err != domain.ErrNoOutstandingLoan {
		t.Fatalf("expected ErrNoOutstandingLoan, got %v", err)
	}
}
