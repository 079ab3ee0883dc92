package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/validation"
)

type GetBalanceHandler struct {
	lg         *logging.ZapLogger
	repository BalanceRepository
}

type BalanceRepository interface {
	Balance(ctx context.Context, accountID string) models.AccountBalance
}

func NewGetBalanceHandler(repository BalanceRepository, lg *logging.ZapLogger) *GetBalanceHandler {
	return &GetBalanceHandler{repository: repository, lg: lg}
}

func (h GetBalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if !validation.ValidAccountID(accountID) {
		respondValidationFailed(w, []models.ValidationError{
			{Field: "accountId", Message: validation.AccountFormatMessage(accountID)},
		})

		return
	}

	respondJSON(w, http.StatusOK, h.repository.Balance(r.Context(), accountID))
}
