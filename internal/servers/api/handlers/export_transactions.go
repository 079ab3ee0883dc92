package handlers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
)

type ExportTransactionsHandler struct {
	lg         *logging.ZapLogger
	repository ExportTransactionsRepository
}

type ExportTransactionsRepository interface {
	ExportCSV(ctx context.Context, filters models.TransactionFilters) (string, error)
}

func NewExportTransactionsHandler(repository ExportTransactionsRepository, lg *logging.ZapLogger) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{repository: repository, lg: lg}
}

func (h ExportTransactionsHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if strings.ToLower(format) != "csv" {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid format",
			Message: "Only 'csv' format is supported",
		})

		return
	}

	content, err := h.repository.ExportCSV(ctx, filtersFromQuery(r))
	if err != nil {
		h.lg.ErrorCtx(ctx, "export transactions failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=transactions.csv`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
