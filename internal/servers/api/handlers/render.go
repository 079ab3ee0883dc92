package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/okatiev/banking_api/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type validationFailedResponse struct {
	Error   string                   `json:"error"`
	Details []models.ValidationError `json:"details"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondValidationFailed(w http.ResponseWriter, details []models.ValidationError) {
	respondJSON(w, http.StatusBadRequest, validationFailedResponse{Error: "Validation failed", Details: details})
}
