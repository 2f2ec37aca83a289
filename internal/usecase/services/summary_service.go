package services

import (
	"context"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/logger"
)

type SummaryService struct {
	ledger *ledger.Ledger
}

func NewSummaryService(l *ledger.Ledger) *SummaryService {
	return &SummaryService{ledger: l}
}

func (s *SummaryService) Summarize(ctx context.Context) (commons.Response[models.SummaryResponse], error) {
	logger.Info("summary service summarize request", nil)

	_ = ctx
	summary := s.ledger.Summarize()

	response := models.SummaryResponse{
		BankName:             summary.BankName,
		AccountCount:         summary.AccountCount,
		SavingsAccountCount:  summary.SavingsAccountCount,
		CurrentAccountCount:  summary.CurrentAccountCount,
		TotalBalance:         summary.TotalBalance,
		TotalOutstandingLoan: summary.TotalOutstandingLoan,
		TotalLoansIssuedEver: summary.TotalLoansIssuedEver,
		TransactionCount:     summary.TransactionCount,
	}

	logger.Info("summary service summarize success", logger.Fields{
		"accountCount":     response.AccountCount,
		"transactionCount": response.TransactionCount,
	})

	return commons.SuccessResponse("summary computed successfully", response), nil
}
