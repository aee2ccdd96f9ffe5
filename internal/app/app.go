package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/vntravel-backend/internal/adapter/memory"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/postgres"
	pgcatalog "github.com/heartmarshall/vntravel-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/seed"
	"github.com/heartmarshall/vntravel-backend/internal/auth"
	"github.com/heartmarshall/vntravel-backend/internal/config"
	"github.com/heartmarshall/vntravel-backend/internal/domain"
	"github.com/heartmarshall/vntravel-backend/internal/service/booking"
	"github.com/heartmarshall/vntravel-backend/internal/service/catalog"
	"github.com/heartmarshall/vntravel-backend/internal/service/recommend"
	"github.com/heartmarshall/vntravel-backend/internal/service/review"
	"github.com/heartmarshall/vntravel-backend/internal/service/saved"
	"github.com/heartmarshall/vntravel-backend/internal/service/search"
	"github.com/heartmarshall/vntravel-backend/internal/service/user"
	"github.com/heartmarshall/vntravel-backend/internal/transport/middleware"
	"github.com/heartmarshall/vntravel-backend/internal/transport/rest"
	"github.com/heartmarshall/vntravel-backend/internal/transport/rest/dataloader"
)

// App is the assembled service: catalog, stores, services and the HTTP
// handler tree.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	handler http.Handler
	closers []func()
}

// Run is the application entry point. It loads configuration, builds the
// service and serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("catalog_source", cfg.Catalog.Source),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New builds the application from cfg. The catalog is loaded once here and
// never changes afterwards.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	ds, components, err := a.loadDataset(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	cat, err := memory.NewCatalog(ds)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	components = append([]rest.Component{{Name: "catalog", Pinger: cat}}, components...)

	defaultUser := cat.DefaultUser()
	savedStore := memory.NewSavedStore()
	savedStore.Seed(defaultUser.ID, defaultUser.SavedPlaces, defaultUser.SavedTours)
	users := memory.NewUserStore(defaultUser)

	recommendSvc, err := recommend.NewService(logger, cat, recommend.Strategy(cfg.Recommend.Strategy), cfg.Recommend.Seed)
	if err != nil {
		a.Close()
		return nil, err
	}
	searchSvc := search.NewService(logger, cat, cfg.Search.Latency)
	savedSvc := saved.NewService(logger, savedStore)
	bookingSvc := booking.NewService(logger, cat, memory.NewBookingStore())
	reviewSvc := review.NewService(logger, cat, memory.NewReviewStore())
	catalogSvc := catalog.NewService(logger, cat)
	userSvc := user.NewService(logger, users, savedStore)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(BuildVersion(), components...),
		Search:  rest.NewSearchHandler(searchSvc, recommendSvc, logger),
		Saved:   rest.NewSavedHandler(savedSvc, logger),
		Booking: rest.NewBookingHandler(bookingSvc, logger),
		Review:  rest.NewReviewHandler(reviewSvc, logger),
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		User:    rest.NewUserHandler(userSvc, logger),
		Loaders: &dataloader.Repos{Guide: cat, Province: cat},
	})

	// Without a secret every request runs as the default user.
	authn := middleware.Auth(nil, defaultUser.ID)
	if cfg.Auth.Enabled() {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		authn = middleware.Auth(jwt, defaultUser.ID)
	}

	a.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Session(),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.RateLimit.RequestsPerMinute > 0, func() middleware.Middleware {
			limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
			a.closers = append(a.closers, limiter.Stop)
			return limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		}),
		authn,
		// Logger sits inside Auth so the access log sees the acting user.
		middleware.Logger(logger),
	)(router)

	logger.Info("application ready",
		slog.Int("provinces", len(ds.Provinces)),
		slog.Int("places", len(ds.Places)),
		slog.Int("tours", len(ds.Tours)),
		slog.Int("guides", len(ds.Guides)),
		slog.Int("posts", len(ds.Posts)),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	return a, nil
}

// Handler returns the root HTTP handler with the full middleware chain.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases background resources. Safe to call more than once.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Serve listens on the configured address until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// loadDataset reads the catalog from the configured source. For postgres the
// pool stays open so the readiness check keeps pinging it.
func (a *App) loadDataset(ctx context.Context) (*domain.Dataset, []rest.Component, error) {
	switch a.cfg.Catalog.Source {
	case config.CatalogSourceSeed:
		ds, err := seed.Default()
		return ds, nil, err

	case config.CatalogSourceFile:
		ds, err := seed.LoadFile(a.cfg.Catalog.SeedPath)
		return ds, nil, err

	case config.CatalogSourcePostgres:
		pool, err := postgres.NewPool(ctx, a.cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, pool.Close)

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return nil, nil, err
		}
		if applied > 0 {
			a.log.Info("catalog migrations applied", slog.Int("count", applied))
		}

		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		ds, err := pgcatalog.New(pool).LoadDataset(loadCtx)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog from database: %w", err)
		}
		return ds, []rest.Component{{Name: "database", Pinger: pool}}, nil
	}
	return nil, nil, fmt.Errorf("unknown catalog source %q", a.cfg.Catalog.Source)
}
