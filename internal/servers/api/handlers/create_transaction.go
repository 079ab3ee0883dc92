package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/okatiev/banking_api/internal/logging"
	"github.com/okatiev/banking_api/internal/models"
	"github.com/okatiev/banking_api/internal/validation"
)

type CreateTransactionHandler struct {
	lg         *logging.ZapLogger
	repository CreateTransactionRepository
}

type CreateTransactionRepository interface {
	Create(ctx context.Context, v validation.Validated) models.Transaction
}

func NewCreateTransactionHandler(repository CreateTransactionRepository, lg *logging.ZapLogger) *CreateTransactionHandler {
	return &CreateTransactionHandler{repository: repository, lg: lg}
}

func (h CreateTransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params models.CreateTransactionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.lg.DebugCtx(ctx, "decode create transaction request failed", zap.Error(err))
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Message: err.Error()})

		return
	}

	// Unknown type literals never reach the validator.
	if !params.Type.Known() {
		respondValidationFailed(w, []models.ValidationError{
			{Field: "type", Message: "Type must be one of: deposit, withdrawal, transfer"},
		})

		return
	}

	v, errs := validation.ValidateTransaction(params)
	if len(errs) > 0 {
		h.lg.DebugCtx(ctx, "transaction rejected", zap.Int("violations", len(errs)))
		respondValidationFailed(w, errs)

		return
	}

	respondJSON(w, http.StatusCreated, h.repository.Create(ctx, v))
}
