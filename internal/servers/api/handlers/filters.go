package handlers

import (
	"net/http"

	"github.com/okatiev/banking_api/internal/models"
)

// filtersFromQuery reads the shared accountId/type/from/to filter parameters
// used by both the listing and the CSV export endpoints.
func filtersFromQuery(r *http.Request) models.TransactionFilters {
	q := r.URL.Query()

	return models.TransactionFilters{
		AccountID: q.Get("accountId"),
		Type:      models.TransactionType(q.Get("type")),
		From:      q.Get("from"),
		To:        q.Get("to"),
	}
}
