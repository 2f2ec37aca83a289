package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultBankName = "Apex Retail Bank"
const defaultListenAddr = ":8080"
const defaultInterestRate = "0.04"
const defaultLoanLimitMultiplier = int64(5)

type Config struct {
	BankName            string
	ListenAddr          string
	InterestRate        string
	LoanLimitMultiplier int64
}

func Load() (Config, error) {
	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	interestRate := strings.TrimSpace(os.Getenv("INTEREST_RATE"))
	if interestRate == "" {
		interestRate = defaultInterestRate
	}
	if parsed, err := strconv.ParseFloat(interestRate, 64); err != nil || parsed <= 0 || parsed >= 1 {
		return Config{}, fmt.Errorf("INTEREST_RATE must be a decimal in (0, 1), got %q", interestRate)
	}

	loanLimitMultiplier := defaultLoanLimitMultiplier
	if raw := strings.TrimSpace(os.Getenv("LOAN_LIMIT_MULTIPLIER")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("LOAN_LIMIT_MULTIPLIER must be a positive integer, got %q", raw)
		}
		loanLimitMultiplier = parsed
	}

	return Config{
		BankName:            bankName,
		ListenAddr:          listenAddr,
		InterestRate:        interestRate,
		LoanLimitMultiplier: loanLimitMultiplier,
	}, nil
}
