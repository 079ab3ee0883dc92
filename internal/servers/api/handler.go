package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/okatiev/banking_api/internal/servers/api/handlers"
)

// Handler composes the endpoint handlers and owns the route table.
type Handler struct {
	handlers.CreateTransactionHandler
	handlers.ListTransactionsHandler
	handlers.ExportTransactionsHandler
	handlers.GetTransactionHandler
	handlers.GetBalanceHandler
	handlers.GetSummaryHandler
	handlers.GetInterestHandler
}

func NewHandler(
	createTransaction *handlers.CreateTransactionHandler,
	listTransactions *handlers.ListTransactionsHandler,
	exportTransactions *handlers.ExportTransactionsHandler,
	getTransaction *handlers.GetTransactionHandler,
	getBalance *handlers.GetBalanceHandler,
	getSummary *handlers.GetSummaryHandler,
	getInterest *handlers.GetInterestHandler,
) *Handler {
	return &Handler{
		CreateTransactionHandler:  *createTransaction,
		ListTransactionsHandler:   *listTransactions,
		ExportTransactionsHandler: *exportTransactions,
		GetTransactionHandler:     *getTransaction,
		GetBalanceHandler:         *getBalance,
		GetSummaryHandler:         *getSummary,
		GetInterestHandler:        *getInterest,
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", health)

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.CreateTransaction)
		r.Get("/", h.ListTransactions)
		r.Get("/export", h.ExportTransactions)
		r.Get("/{transactionID}", h.GetTransaction)
	})

	r.Route("/accounts/{accountID}", func(r chi.Router) {
		r.Get("/balance", h.GetBalance)
		r.Get("/summary", h.GetSummary)
		r.Get("/interest", h.GetInterest)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error":  "Not found",
			"path":   r.URL.Path,
			"method": r.Method,
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Banking API is running",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
