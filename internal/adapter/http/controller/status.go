package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/banking-ledger/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error taxonomy onto HTTP statuses. Business
// rule rejections are 422, malformed input is 400, missing accounts are 404.
func statusForError(err error, message string) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBelowMinimumBalance),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLoanLimitExceeded),
		errors.Is(err, domain.ErrNoOutstandingLoan):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidHolderName),
		errors.Is(err, domain.ErrInvalidAccountKind),
		errors.Is(err, domain.ErrSameAccountTransfer):
		return http.StatusBadRequest
	case message == "validation failed":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
