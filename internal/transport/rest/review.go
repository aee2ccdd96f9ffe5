package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/review"
)

type reviewService interface {
	SubmitReview(ctx context.Context, input review.SubmitInput) (*domain.Review, error)
	ListReviews(ctx context.Context, input review.ListInput) ([]domain.Review, error)
	ListMyReviews(ctx context.Context) ([]domain.Review, error)
}

// ReviewHandler serves reviews of places, tours and guides.
type ReviewHandler struct {
	reviews reviewService
	log     *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(s reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: s, log: logger.With("handler", "review")}
}

type reviewRequest struct {
	TargetID   string `json:"targetId"`
	TargetType string `json:"targetType"`
	Rating     int    `json:"rating"`
	Content    string `json:"content"`
}

// Submit handles POST /api/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rv, err := h.reviews.SubmitReview(r.Context(), review.SubmitInput{
		TargetID:   req.TargetID,
		TargetType: domain.EntityKind(req.TargetType),
		Rating:     req.Rating,
		Content:    req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

// List handles GET /api/reviews?targetType=&targetId=.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviews.ListReviews(r.Context(), review.ListInput{
		TargetID:   queryString(r, "targetId"),
		TargetType: domain.EntityKind(queryString(r, "targetType")),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": list})
}

// ListMine handles GET /api/me/reviews.
func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviews.ListMyReviews(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": list})
}
