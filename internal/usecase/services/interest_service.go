package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/logger"
)

type InterestService struct {
	ledger *ledger.Ledger
	rate   decimal.Decimal
}

// NewInterestService parses the configured yearly rate once at wiring time.
func NewInterestService(l *ledger.Ledger, rate string) (*InterestService, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil {
		return nil, fmt.Errorf("parse interest rate: %w", err)
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("interest rate must be greater than zero")
	}

	return &InterestService{ledger: l, rate: parsed}, nil
}

// ApplyYearlyInterest credits every savings account once. Crediting zero
// accounts is a valid run, not an error.
func (s *InterestService) ApplyYearlyInterest(ctx context.Context) (commons.Response[models.InterestRunResponse], error) {
	logger.Info("interest service apply yearly interest request", logger.Fields{
		"rate": s.rate,
	})

	_ = ctx
	credited, err := s.ledger.ApplyYearlyInterest(s.rate)
	if err != nil {
		logger.Error("interest service apply yearly interest failed", err, nil)
		return commons.ErrorResponse[models.InterestRunResponse]("failed to apply interest", err.Error()), err
	}

	response := models.InterestRunResponse{
		Rate:             s.rate,
		AccountsCredited: credited,
	}

	logger.Info("interest service apply yearly interest success", logger.Fields{
		"rate":             response.Rate,
		"accountsCredited": response.AccountsCredited,
	})

	return commons.SuccessResponse("yearly interest applied successfully", response), nil
}
