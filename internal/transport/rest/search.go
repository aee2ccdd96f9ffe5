package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/recommend"
	"github.com/heartmarshall/vntravel-backend/internal/service/search"
	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

type searchService interface {
	SearchLatest(ctx context.Context, sessionKey string, input search.Input) (*search.Result, error)
}

type recommendService interface {
	Recommend(ctx context.Context, prefs recommend.Preferences) ([]domain.RecommendedTour, error)
}

// SearchHandler serves search and preference matching.
type SearchHandler struct {
	search    searchService
	recommend recommendService
	log       *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(s searchService, rec recommendService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{search: s, recommend: rec, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=&type=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := search.Input{
		Query: r.URL.Query().Get("q"),
		Type:  domain.SearchType(queryString(r, "type")),
	}

	result, err := h.search.SearchLatest(r.Context(), sessionKey(r.Context()), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type recommendRequest struct {
	Interests  []string `json:"interests"`
	TravelType string   `json:"travelType"`
	Budget     int64    `json:"budget"`
	Duration   int      `json:"duration"`
}

// Recommend handles POST /api/recommendations.
func (h *SearchHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	recs, err := h.recommend.Recommend(r.Context(), recommend.Preferences{
		Interests:  req.Interests,
		TravelType: req.TravelType,
		Budget:     req.Budget,
		Duration:   req.Duration,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	views, err := hydrateRecommended(r.Context(), recs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tours": views})
}

// sessionKey scopes last-query-wins to one user, and to one client session
// when the client sends a session id.
func sessionKey(ctx context.Context) string {
	userID, _ := ctxutil.UserIDFromCtx(ctx)
	key := userID.String()
	if sid := ctxutil.SessionIDFromCtx(ctx); sid != "" {
		key += "/" + sid
	}
	return key
}
