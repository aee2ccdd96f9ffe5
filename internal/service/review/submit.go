package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

// SubmitReview validates and appends a review. Rules are reported in the
// order targetType, targetId, rating, content.
func (s *Service) SubmitReview(ctx context.Context, input SubmitInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	targetID := strings.TrimSpace(input.TargetID)

	var errs []domain.FieldError
	switch {
	case !input.TargetType.IsValid():
		errs = append(errs, domain.FieldError{Field: FieldTargetType, Message: "must be place, tour, or guide"})
		if targetID == "" {
			errs = append(errs, domain.FieldError{Field: FieldTargetID, Message: "required"})
		}
	case targetID == "":
		errs = append(errs, domain.FieldError{Field: FieldTargetID, Message: "required"})
	default:
		exists, err := s.targets.Exists(ctx, input.TargetType, targetID)
		if err != nil {
			return nil, fmt.Errorf("review.SubmitReview: resolve target: %w", err)
		}
		if !exists {
			errs = append(errs, domain.FieldError{Field: FieldTargetID, Message: input.TargetType.String() + " not found"})
		}
	}
	errs = append(errs, input.validateBody()...)

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	r := domain.Review{
		ID:         uuid.New(),
		UserID:     userID,
		TargetID:   targetID,
		TargetType: input.TargetType,
		Rating:     input.Rating,
		Content:    strings.TrimSpace(input.Content),
		CreatedAt:  s.now(),
	}

	created, err := s.reviews.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("review.SubmitReview: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.String("user_id", userID.String()),
		slog.String("review_id", created.ID.String()),
		slog.String("target_type", created.TargetType.String()),
		slog.String("target_id", created.TargetID),
		slog.Int("rating", created.Rating))

	return created, nil
}

// ListReviews returns the reviews of one target, newest first.
func (s *Service) ListReviews(ctx context.Context, input ListInput) ([]domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.reviews.ListByTarget(ctx, input.TargetType, strings.TrimSpace(input.TargetID))
	if err != nil {
		return nil, fmt.Errorf("review.ListReviews: %w", err)
	}
	return list, nil
}

// ListMyReviews returns the current user's reviews, newest first.
func (s *Service) ListMyReviews(ctx context.Context) ([]domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("review.ListMyReviews: %w", err)
	}
	return list, nil
}
