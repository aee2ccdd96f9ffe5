package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/catalog"
)

type catalogService interface {
	ListProvinces(ctx context.Context, region domain.Region) ([]domain.Province, error)
	GetProvince(ctx context.Context, id string) (*domain.Province, error)
	ListPlaces(ctx context.Context, filter catalog.PlaceFilter) ([]domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	ListTours(ctx context.Context, filter catalog.TourFilter) ([]domain.Tour, error)
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
	ListGuides(ctx context.Context, filter catalog.GuideFilter) ([]domain.Guide, error)
	GetGuide(ctx context.Context, id string) (*domain.Guide, error)
	ListPosts(ctx context.Context, filter catalog.PostFilter) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

// CatalogHandler serves read-only browsing of provinces, places, tours,
// guides and posts.
type CatalogHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(s catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: s, log: logger.With("handler", "catalog")}
}

// ListProvinces handles GET /api/provinces?region=.
func (h *CatalogHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListProvinces(r.Context(), domain.Region(queryString(r, "region")))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"provinces": list})
}

// GetProvince handles GET /api/provinces/{id}.
func (h *CatalogHandler) GetProvince(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProvince(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListPlaces handles GET /api/places?category=&provinceId=&minRating=&sort=.
func (h *CatalogHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	minRating, err := queryFloat(r, "minRating")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.catalog.ListPlaces(r.Context(), catalog.PlaceFilter{
		Category:   domain.PlaceCategory(queryString(r, "category")),
		ProvinceID: queryString(r, "provinceId"),
		MinRating:  minRating,
		SortBy:     catalog.SortBy(queryString(r, "sort")),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"places": list})
}

// GetPlace handles GET /api/places/{id}.
func (h *CatalogHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListTours handles GET /api/tours?provinceId=&category=&minPrice=&maxPrice=&sort=.
func (h *CatalogHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	minPrice, err := queryInt64(r, "minPrice")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	maxPrice, err := queryInt64(r, "maxPrice")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.catalog.ListTours(r.Context(), catalog.TourFilter{
		ProvinceID: queryString(r, "provinceId"),
		Category:   queryString(r, "category"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		SortBy:     catalog.SortBy(queryString(r, "sort")),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	views, err := hydrateTours(r.Context(), list)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tours": views})
}

// GetTour handles GET /api/tours/{id}.
func (h *CatalogHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	t, err := h.catalog.GetTour(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	view, err := hydrateTour(r.Context(), *t)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ListGuides handles GET /api/guides?provinceId=&language=&specialty=&online=&verified=&sort=.
func (h *CatalogHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	online, err := queryBool(r, "online")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	verified, err := queryBool(r, "verified")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, err := h.catalog.ListGuides(r.Context(), catalog.GuideFilter{
		ProvinceID:   queryString(r, "provinceId"),
		Language:     queryString(r, "language"),
		Specialty:    queryString(r, "specialty"),
		OnlineOnly:   online,
		VerifiedOnly: verified,
		SortBy:       catalog.SortBy(queryString(r, "sort")),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"guides": list})
}

// GetGuide handles GET /api/guides/{id}.
func (h *CatalogHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	g, err := h.catalog.GetGuide(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// ListPosts handles GET /api/posts?tag=.
func (h *CatalogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListPosts(r.Context(), catalog.PostFilter{Tag: queryString(r, "tag")})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": list})
}

// GetPost handles GET /api/posts/{id}.
func (h *CatalogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
