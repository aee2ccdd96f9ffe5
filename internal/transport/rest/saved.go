package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/saved"
)

type savedService interface {
	IsSaved(ctx context.Context, input saved.ItemInput) (bool, error)
	ToggleSaved(ctx context.Context, input saved.ItemInput) (bool, error)
	ListSaved(ctx context.Context) (*saved.Items, error)
}

// SavedHandler serves the current user's saved places and tours.
type SavedHandler struct {
	saved savedService
	log   *slog.Logger
}

// NewSavedHandler creates a SavedHandler.
func NewSavedHandler(s savedService, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{saved: s, log: logger.With("handler", "saved")}
}

type savedResponse struct {
	Saved bool `json:"saved"`
}

// List handles GET /api/saved.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.saved.ListSaved(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// IsSaved handles GET /api/saved/{kind}/{id}.
func (h *SavedHandler) IsSaved(w http.ResponseWriter, r *http.Request) {
	ok, err := h.saved.IsSaved(r.Context(), itemFromPath(r))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedResponse{Saved: ok})
}

// Toggle handles POST /api/saved/{kind}/{id}/toggle.
func (h *SavedHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ok, err := h.saved.ToggleSaved(r.Context(), itemFromPath(r))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, savedResponse{Saved: ok})
}

func itemFromPath(r *http.Request) saved.ItemInput {
	return saved.ItemInput{
		Kind: domain.EntityKind(chi.URLParam(r, "kind")),
		ID:   chi.URLParam(r, "id"),
	}
}
