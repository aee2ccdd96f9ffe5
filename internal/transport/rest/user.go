package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

type userService interface {
	Me(ctx context.Context) (*domain.User, error)
}

// UserHandler serves the current user's profile.
type UserHandler struct {
	users userService
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(s userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: s, log: logger.With("handler", "user")}
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
