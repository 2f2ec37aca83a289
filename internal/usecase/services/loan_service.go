package services

import (
	"context"
	"errors"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
	"github.com/api-sage/banking-ledger/internal/domain"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/logger"
)

type LoanService struct {
	ledger *ledger.Ledger
}

func NewLoanService(l *ledger.Ledger) *LoanService {
	return &LoanService{ledger: l}
}

func (s *LoanService) IssueLoan(ctx context.Context, req models.LoanRequest) (commons.Response[models.LoanResponse], error) {
	logger.Info("loan service issue loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("loan service issue loan validation failed", err, nil)
		return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
	}

	snapshot, err := s.ledger.IssueLoan(req.AccountNumber, req.Amount)
	if err != nil {
		logger.Error("loan service issue loan failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return commons.ErrorResponse[models.LoanResponse]("Account not found"), err
		case errors.Is(err, domain.ErrLoanLimitExceeded):
			return commons.ErrorResponse[models.LoanResponse]("Loan limit exceeded", err.Error()), err
		default:
			return commons.ErrorResponse[models.LoanResponse]("validation failed", err.Error()), err
		}
	}

	response := models.LoanResponse{
		AccountNumber:   snapshot.Number,
		IssuedAmount:    req.Amount,
		Balance:         snapshot.Balance,
		OutstandingLoan: snapshot.OutstandingLoan,
	}

	logger.Info("loan service issue loan success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"issuedAmount":    response.IssuedAmount,
		"outstandingLoan": response.OutstandingLoan,
	})

	return commons.SuccessResponse("loan issued successfully", response), nil
}

func (s *LoanService) RepayLoan(ctx context.Context, req models.LoanRequest) (commons.Response[models.RepaymentResponse], error) {
	logger.Info("loan service repay loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("loan service repay loan validation failed", err, nil)
		return commons.ErrorResponse[models.RepaymentResponse]("validation failed", err.Error()), err
	}

	applied, snapshot, err := s.ledger.RepayLoan(req.AccountNumber, req.Amount)
	if err != nil {
		logger.Error("loan service repay loan failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        req.Amount,
		})
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return commons.ErrorResponse[models.RepaymentResponse]("Account not found"), err
		case errors.Is(err, domain.ErrNoOutstandingLoan):
			return commons.ErrorResponse[models.RepaymentResponse]("No outstanding loan", err.Error()), err
		case errors.Is(err, domain.ErrInsufficientFunds):
			return commons.ErrorResponse[models.RepaymentResponse]("Insufficient balance", err.Error()), err
		default:
			return commons.ErrorResponse[models.RepaymentResponse]("validation failed", err.Error()), err
		}
	}

	response := models.RepaymentResponse{
		AccountNumber:   snapshot.Number,
		RequestedAmount: req.Amount,
		AppliedAmount:   applied,
		Balance:         snapshot.Balance,
		OutstandingLoan: snapshot.OutstandingLoan,
	}

	logger.Info("loan service repay loan success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"appliedAmount":   response.AppliedAmount,
		"outstandingLoan": response.OutstandingLoan,
	})

	return commons.SuccessResponse("loan repayment applied successfully", response), nil
}
