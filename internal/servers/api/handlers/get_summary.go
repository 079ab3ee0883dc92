package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/validation"
)

type GetSummaryHandler struct {
	lg         *logging.ZapLogger
	repository SummaryRepository
}

type SummaryRepository interface {
	Summary(ctx context.Context, accountID string) models.AccountSummary
}

func NewGetSummaryHandler(repository SummaryRepository, lg *logging.ZapLogger) *GetSummaryHandler {
	return &GetSummaryHandler{repository: repository, lg: lg}
}

func (h GetSummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if !validation.ValidAccountID(accountID) {
		respondValidationFailed(w, []models.ValidationError{
			{Field: "accountId", Message: validation.AccountFormatMessage(accountID)},
		})

		return
	}

	respondJSON(w, http.StatusOK, h.repository.Summary(r.Context(), accountID))
}
