package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber int64) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, accountNumber int64, req models.AmountRequest) (commons.Response[models.AccountResponse], error)
	Withdraw(ctx context.Context, accountNumber int64, req models.AmountRequest) (commons.Response[models.AccountResponse], error)
	ListTransactions(ctx context.Context, accountNumber int64) (commons.Response[models.TransactionListResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/accounts", c.openAccount).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{accountNumber}", c.getAccount).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{accountNumber}/deposits", c.deposit).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{accountNumber}/withdrawals", c.withdraw).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{accountNumber}/transactions", c.listTransactions).Methods(http.MethodGet)
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.OpenAccount(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountNumber, ok := accountNumberFromPath(w, r, start)
	if !ok {
		return
	}

	response, err := c.service.GetAccount(r.Context(), accountNumber)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, c.service.Withdraw)
}

func (c *AccountController) applyAmount(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, accountNumber int64, req models.AmountRequest) (commons.Response[models.AccountResponse], error),
) {
	start := time.Now()

	accountNumber, ok := accountNumberFromPath(w, r, start)
	if !ok {
		return
	}

	var req models.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := apply(r.Context(), accountNumber, req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) listTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountNumber, ok := accountNumberFromPath(w, r, start)
	if !ok {
		return
	}

	response, err := c.service.ListTransactions(r.Context(), accountNumber)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err, response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func accountNumberFromPath(w http.ResponseWriter, r *http.Request, start time.Time) (int64, bool) {
	raw := mux.Vars(r)["accountNumber"]
	accountNumber, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || accountNumber <= 0 {
		response := commons.ErrorResponse[models.AccountResponse]("validation failed", "accountNumber must be a positive integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return 0, false
	}
	return accountNumber, true
}
