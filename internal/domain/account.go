package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountKindSavings AccountKind = "SAVINGS"
	AccountKindCurrent AccountKind = "CURRENT"
)

var savingsMinimumBalance = decimal.NewFromInt(1000)

// ParseAccountKind normalizes a caller-supplied kind string.
func ParseAccountKind(raw string) (AccountKind, error) {
	switch AccountKind(strings.ToUpper(strings.TrimSpace(raw))) {
	case AccountKindSavings:
		return AccountKindSavings, nil
	case AccountKindCurrent:
		return AccountKindCurrent, nil
	default:
		return "", ErrInvalidAccountKind
	}
}

// MinimumBalance is the lowest balance an account of this kind may ever hold.
func (k AccountKind) MinimumBalance() decimal.Decimal {
	if k == AccountKindSavings {
		return savingsMinimumBalance
	}
	return decimal.Zero
}
