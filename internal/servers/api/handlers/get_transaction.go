package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/storage"
)

type GetTransactionHandler struct {
	lg         *logging.ZapLogger
	repository GetTransactionRepository
}

type GetTransactionRepository interface {
	FindByID(ctx context.Context, id string) (models.Transaction, error)
}

func NewGetTransactionHandler(repository GetTransactionRepository, lg *logging.ZapLogger) *GetTransactionHandler {
	return &GetTransactionHandler{repository: repository, lg: lg}
}

func (h GetTransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "transactionID")

	transaction, err := h.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{
				Error:   "Not found",
				Message: fmt.Sprintf("Transaction with ID '%s' not found", id),
			})

			return
		}

		h.lg.ErrorCtx(ctx, "find transaction failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})

		return
	}

	respondJSON(w, http.StatusOK, transaction)
}
