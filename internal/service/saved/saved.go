package saved

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

// IsSaved reports whether the item is in the user's saved set.
// Existence of the item in the catalog is not checked.
func (s *Service) IsSaved(ctx context.Context, input ItemInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	saved, err := s.store.IsSaved(ctx, userID, input.Kind, input.ID)
	if err != nil {
		return false, fmt.Errorf("saved.IsSaved: %w", err)
	}
	return saved, nil
}

// ToggleSaved flips the item's membership and returns the new state.
func (s *Service) ToggleSaved(ctx context.Context, input ItemInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	saved, err := s.store.Toggle(ctx, userID, input.Kind, input.ID)
	if err != nil {
		return false, fmt.Errorf("saved.ToggleSaved: %w", err)
	}

	s.log.InfoContext(ctx, "saved toggled",
		slog.String("user_id", userID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("item_id", input.ID),
		slog.Bool("saved", saved))

	return saved, nil
}

// ListSaved returns the user's saved places and tours.
func (s *Service) ListSaved(ctx context.Context) (*Items, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	places, tours, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("saved.ListSaved: %w", err)
	}
	return &Items{Places: places, Tours: tours}, nil
}
