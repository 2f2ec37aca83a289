package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOpenAccountRequestValidate(t *testing.T) {
	valid := OpenAccountRequest{
		HolderName:     "Alice",
		AccountKind:    "savings",
		OpeningBalance: decimal.NewFromInt(5000),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	empty := OpenAccountRequest{OpeningBalance: decimal.NewFromInt(-1)}
	err := empty.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"holderName", "accountKind", "openingBalance"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %q", want, err)
		}
	}
}

func TestTransferRequestValidate(t *testing.T) {
	valid := TransferRequest{FromAccountNumber: 1001, ToAccountNumber: 1002, Amount: decimal.NewFromInt(10)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	if err := (TransferRequest{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty transfer request")
	}
}

func TestLoanRequestValidate(t *testing.T) {
	if err := (LoanRequest{AccountNumber: 1001, Amount: decimal.NewFromInt(10)}).Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if err := (LoanRequest{AccountNumber: 1001}).Validate(); err == nil {
		t.Fatal("expected validation error for zero amount")
	}
}

func TestAmountRequestValidate(t *testing.T) {
	if err := (AmountRequest{Amount: decimal.NewFromFloat(0.01)}).Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if err := (AmountRequest{Amount: decimal.NewFromInt(-5)}).Validate(); err == nil {
		t.Fatal("expected validation error for negative amount")
	}
}
