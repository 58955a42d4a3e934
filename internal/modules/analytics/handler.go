package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

// Handler exposes analytics HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Get("/revenue/daily", h.dailyRevenue)
		r.Get("/top-items", h.topItems)
	})
}

func (h *Handler) dailyRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.DailyRevenue(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respond(w, http.StatusOK, revenue)
}

func (h *Handler) topItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.service.TopSellingItems(r.Context(), limit)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": items})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondStorageError maps the two storage failure kinds to the two
// banners the dashboard knows how to show.
func respondStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrSchemaMissing) {
		respond(w, http.StatusServiceUnavailable, map[string]string{
			"code":  "setup_required",
			"error": "database tables not found",
		})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{
		"code":  "storage_error",
		"error": "an error occurred while fetching data",
	})
}
