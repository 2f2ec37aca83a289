package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/api-sage/banking-ledger/internal/adapter/http/models"
	"github.com/api-sage/banking-ledger/internal/commons"
)

type InterestService interface {
	ApplyYearlyInterest(ctx context.Context) (commons.Response[models.InterestRunResponse], error)
}

type SummaryService interface {
	Summarize(ctx context.Context) (commons.Response[models.SummaryResponse], error)
}

// BankController exposes the ledger-wide operations: the yearly interest run
// and the bank summary report.
type BankController struct {
	interest InterestService
	summary  SummaryService
}

func NewBankController(interest InterestService, summary SummaryService) *BankController {
	return &BankController{interest: interest, summary: summary}
}

func (c *BankController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/interest-runs", c.applyInterest).Methods(http.MethodPost)
	r.HandleFunc("/summary", c.summarize).Methods(http.MethodGet)
}

func (c *BankController) applyInterest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.interest.ApplyYearlyInterest(r.Context())
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

func (c *BankController) summarize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.summary.Summarize(r.Context())
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
