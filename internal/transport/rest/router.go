package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vntravel-backend/internal/transport/rest/dataloader"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Search  *SearchHandler
	Saved   *SavedHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Catalog *CatalogHandler
	User    *UserHandler
	Loaders *dataloader.Repos
}

// NewRouter builds the route tree. Health endpoints sit outside /api so they bypass
// the per-request loaders.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(dataloader.Middleware(h.Loaders))

		r.Get("/search", h.Search.Search)
		r.Post("/recommendations", h.Search.Recommend)

		r.Route("/saved", func(r chi.Router) {
			r.Get("/", h.Saved.List)
			r.Get("/{kind}/{id}", h.Saved.IsSaved)
			r.Post("/{kind}/{id}/toggle", h.Saved.Toggle)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", h.Booking.List)
			r.Post("/", h.Booking.Submit)
			r.Get("/{id}", h.Booking.Get)
			r.Post("/{id}/cancel", h.Booking.Cancel)
		})

		r.Get("/reviews", h.Review.List)
		r.Post("/reviews", h.Review.Submit)

		r.Get("/provinces", h.Catalog.ListProvinces)
		r.Get("/provinces/{id}", h.Catalog.GetProvince)
		r.Get("/places", h.Catalog.ListPlaces)
		r.Get("/places/{id}", h.Catalog.GetPlace)
		r.Get("/tours", h.Catalog.ListTours)
		r.Get("/tours/{id}", h.Catalog.GetTour)
		r.Get("/guides", h.Catalog.ListGuides)
		r.Get("/guides/{id}", h.Catalog.GetGuide)
		r.Get("/posts", h.Catalog.ListPosts)
		r.Get("/posts/{id}", h.Catalog.GetPost)

		r.Get("/me", h.User.Me)
		r.Get("/me/reviews", h.Review.ListMine)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorBody{Code: CodeBadRequest, Message: "method not allowed"})
	})

	return r
}
