package handlers

import (
	"context"
	"net/http"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
)

type ListTransactionsHandler struct {
	lg         *logging.ZapLogger
	repository ListTransactionsRepository
}

type ListTransactionsRepository interface {
	Search(ctx context.Context, filters models.TransactionFilters) []models.Transaction
}

func NewListTransactionsHandler(repository ListTransactionsRepository, lg *logging.ZapLogger) *ListTransactionsHandler {
	return &ListTransactionsHandler{repository: repository, lg: lg}
}

func (h ListTransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.repository.Search(r.Context(), filtersFromQuery(r)))
}
