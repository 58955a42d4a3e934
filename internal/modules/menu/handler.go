package menu

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

// Handler exposes menu HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/menu", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Post("/{id}/stock/toggle", h.toggleStock)
		r.Put("/{id}/price", h.updatePrice)
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
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
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) toggleStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}
	item, err := h.service.ToggleStock(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to update stock", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}
	var req UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.service.UpdatePrice(r.Context(), id, req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, item)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
