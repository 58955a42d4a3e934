package feedback

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

// Handler exposes feedback HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/feedback", func(r chi.Router) {
		r.Get("/", h.listBuckets)
		r.Post("/{id}/resolve", h.resolve)
	})
}

func (h *Handler) listBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.ListBuckets(r.Context())
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
	respond(w, http.StatusOK, buckets)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.ResolveFeedback(r.Context(), id); err != nil {
		http.Error(w, "failed to resolve feedback", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
