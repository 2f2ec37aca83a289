package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
	"github.com/api-sage/banking-ledger/internal/domain"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/logger"
)

type AccountService struct {
	ledger *ledger.Ledger
}

func NewAccountService(l *ledger.Ledger) *AccountService {
	return &AccountService{ledger: l}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	kind, err := domain.ParseAccountKind(req.AccountKind)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.ledger.CreateAccount(strings.TrimSpace(req.HolderName), kind, req.OpeningBalance)
	if err != nil {
		logger.Error("account service open account failed", err, logger.Fields{
			"accountKind":    string(kind),
			"openingBalance": req.OpeningBalance,
		})
		if errors.Is(err, domain.ErrBelowMinimumBalance) {
			return commons.ErrorResponse[models.AccountResponse]("Opening balance is below the account minimum", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	response := mapSnapshotToAccountResponse(account.Snapshot())

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"accountKind":   response.AccountKind,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber int64) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	_ = ctx
	account, err := s.ledger.Find(accountNumber)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapSnapshotToAccountResponse(account.Snapshot())), nil
}

func (s *AccountService) Deposit(ctx context.Context, accountNumber int64, req models.AmountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        req.Amount,
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.ledger.Find(accountNumber)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
	}

	snapshot, err := account.Deposit(req.Amount)
	if err != nil {
		logger.Error("account service deposit failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        req.Amount,
		})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"balance":       snapshot.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", mapSnapshotToAccountResponse(snapshot)), nil
}

func (s *AccountService) Withdraw(ctx context.Context, accountNumber int64, req models.AmountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        req.Amount,
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.ledger.Find(accountNumber)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
	}

	snapshot, err := account.Withdraw(req.Amount)
	if err != nil {
		logger.Error("account service withdraw failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        req.Amount,
		})
		if errors.Is(err, domain.ErrBelowMinimumBalance) {
			return commons.ErrorResponse[models.AccountResponse]("Withdrawal would breach the account minimum", err.Error()), err
		}
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"balance":       snapshot.Balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", mapSnapshotToAccountResponse(snapshot)), nil
}

func (s *AccountService) ListTransactions(ctx context.Context, accountNumber int64) (commons.Response[models.TransactionListResponse], error) {
	logger.Info("account service list transactions request", logger.Fields{
		"accountNumber": accountNumber,
	})

	_ = ctx
	account, err := s.ledger.Find(accountNumber)
	if err != nil {
		logger.Error("account service list transactions failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionListResponse]("Account not found"), err
	}

	history := account.History()
	transactions := make([]models.TransactionResponse, 0, len(history))
	for _, record := range history {
		transactions = append(transactions, models.TransactionResponse{
			Sequence:         record.Sequence,
			Kind:             string(record.Kind),
			Amount:           record.Amount,
			ResultingBalance: record.ResultingBalance,
			Note:             record.Note,
			Timestamp:        record.Timestamp,
			Counterparty:     record.Counterparty,
			Reference:        record.Reference,
		})
	}

	response := models.TransactionListResponse{
		AccountNumber: accountNumber,
		Transactions:  transactions,
	}
	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

func mapSnapshotToAccountResponse(snapshot ledger.AccountSnapshot) models.AccountResponse {
	return models.AccountResponse{
		AccountNumber:    snapshot.Number,
		HolderName:       snapshot.HolderName,
		AccountKind:      string(snapshot.Kind),
		Balance:          snapshot.Balance,
		OutstandingLoan:  snapshot.OutstandingLoan,
		OpenedAt:         snapshot.OpenedAt.Format(time.RFC3339),
		TransactionCount: snapshot.TransactionCount,
	}
}
