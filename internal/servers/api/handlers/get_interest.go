package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/validation"
)

type GetInterestHandler struct {
	lg         *logging.ZapLogger
	repository InterestRepository
}

type InterestRepository interface {
	Interest(ctx context.Context, accountID string, rate decimal.Decimal, days int64) models.InterestProjection
}

func NewGetInterestHandler(repository InterestRepository, lg *logging.ZapLogger) *GetInterestHandler {
	return &GetInterestHandler{repository: repository, lg: lg}
}

// GetInterest projects simple interest on the account balance. The rate and
// days query parameters are required and must be strictly positive; the
// repository never sees invalid input.
func (h GetInterestHandler) GetInterest(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	details := []models.ValidationError{}
	if !validation.ValidAccountID(accountID) {
		details = append(details, models.ValidationError{
			Field:   "accountId",
			Message: validation.AccountFormatMessage(accountID),
		})
	}

	q := r.URL.Query()

	rate, err := decimal.NewFromString(q.Get("rate"))
	if err != nil || !rate.IsPositive() {
		details = append(details, models.ValidationError{
			Field:   "rate",
			Message: "rate must be a positive number",
		})
	}

	days, err := strconv.ParseInt(q.Get("days"), 10, 64)
	if err != nil || days <= 0 {
		details = append(details, models.ValidationError{
			Field:   "days",
			Message: "days must be a positive integer",
		})
	}

	if len(details) > 0 {
		respondValidationFailed(w, details)

		return
	}

	respondJSON(w, http.StatusOK, h.repository.Interest(r.Context(), accountID, rate, days))
}
