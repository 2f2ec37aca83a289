package services

import (
	"context"
	"errors"
	"time"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
	"github.com/api-sage/banking-ledger/internal/domain"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/logger"
)

type TransferService struct {
	ledger *ledger.Ledger
}

func NewTransferService(l *ledger.Ledger) *TransferService {
	return &TransferService{ledger: l}
}

func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	receipt, err := s.ledger.Transfer(req.FromAccountNumber, req.ToAccountNumber, req.Amount)
	if err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"fromAccountNumber": req.FromAccountNumber,
			"toAccountNumber":   req.ToAccountNumber,
			"amount":            req.Amount,
		})
		switch {
		case errors.Is(err, domain.ErrSameAccountTransfer):
			return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
		case errors.Is(err, domain.ErrAccountNotFound):
			return commons.ErrorResponse[models.TransferResponse]("Account not found"), err
		case errors.Is(err, domain.ErrBelowMinimumBalance):
			return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", err.Error()), err
		default:
			return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
		}
	}

	response := models.TransferResponse{
		Reference:         receipt.Reference,
		FromAccountNumber: receipt.From.Number,
		ToAccountNumber:   receipt.To.Number,
		Amount:            receipt.Amount,
		FromBalance:       receipt.From.Balance,
		ToBalance:         receipt.To.Balance,
		CompletedAt:       receipt.CompletedAt.Format(time.RFC3339),
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"reference":         response.Reference,
		"fromAccountNumber": response.FromAccountNumber,
		"toAccountNumber":   response.ToAccountNumber,
		"amount":            response.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}
