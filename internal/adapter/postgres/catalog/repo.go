// Package catalog reads and writes the travel catalog in PostgreSQL. The
// database is a catalog source only: rows are loaded once into a
// domain.Dataset and served from memory.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/vntravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Table columns in scan order.
var (
	provinceColumns = []string{"id", "name", "region", "total_places", "total_tours", "total_guides"}
	placeColumns    = []string{"id", "name", "category", "province_id", "address", "description", "rating", "review_count", "images", "opening_hours"}
	guideColumns    = []string{"id", "name", "province_id", "avatar", "rating", "review_count", "total_tours", "specialties", "languages", "hourly_rate", "is_online", "is_verified", "response_time"}
	tourColumns     = []string{"id", "name", "province_id", "guide_id", "description", "price", "original_price", "duration_days", "group_min", "group_max", "rating", "review_count", "images", "itinerary", "includes", "excludes", "available_dates", "categories"}
	postColumns     = []string{"id", "author_id", "author_name", "author_avatar", "content", "images", "tags", "like_count", "comment_count", "share_count", "comments", "created_at"}
	userColumns     = []string{"id", "name", "avatar", "saved_places", "saved_tours", "preferences"}
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// LoadDataset reads every catalog table concurrently and returns the rows in
// their stored order. The default user is the first catalog_users row.
func (r *Repo) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	var ds domain.Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { ds.Provinces, err = r.ListProvinces(gctx); return err })
	g.Go(func() (err error) { ds.Places, err = r.ListPlaces(gctx); return err })
	g.Go(func() (err error) { ds.Guides, err = r.ListGuides(gctx); return err })
	g.Go(func() (err error) { ds.Tours, err = r.ListTours(gctx); return err })
	g.Go(func() (err error) { ds.Posts, err = r.ListPosts(gctx); return err })
	g.Go(func() error {
		u, err := r.DefaultUser(gctx)
		if err != nil {
			return err
		}
		ds.User = *u
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	return list(ctx, r.db, "provinces", provinceColumns, func(rows pgx.Rows) (domain.Province, error) {
		var p domain.Province
		err := rows.Scan(&p.ID, &p.Name, &p.Region, &p.TotalPlaces, &p.TotalTours, &p.TotalGuides)
		return p, err
	})
}

func (r *Repo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return list(ctx, r.db, "places", placeColumns, func(rows pgx.Rows) (domain.Place, error) {
		var p domain.Place
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.ProvinceID, &p.Address, &p.Description,
			&p.Rating, &p.ReviewCount, &p.Images, &p.OpeningHours)
		return p, err
	})
}

func (r *Repo) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	return list(ctx, r.db, "guides", guideColumns, func(rows pgx.Rows) (domain.Guide, error) {
		var g domain.Guide
		err := rows.Scan(&g.ID, &g.Name, &g.ProvinceID, &g.Avatar, &g.Rating, &g.ReviewCount, &g.TotalTours,
			&g.Specialties, &g.Languages, &g.HourlyRate, &g.IsOnline, &g.IsVerified, &g.ResponseTime)
		return g, err
	})
}

func (r *Repo) ListTours(ctx context.Context) ([]domain.Tour, error) {
	return list(ctx, r.db, "tours", tourColumns, func(rows pgx.Rows) (domain.Tour, error) {
		var (
			t         domain.Tour
			itinerary []byte
		)
		err := rows.Scan(&t.ID, &t.Name, &t.ProvinceID, &t.GuideID, &t.Description, &t.Price, &t.OriginalPrice,
			&t.DurationDays, &t.GroupSize.Min, &t.GroupSize.Max, &t.Rating, &t.ReviewCount, &t.Images,
			&itinerary, &t.Includes, &t.Excludes, &t.AvailableDates, &t.Categories)
		if err != nil {
			return t, err
		}
		if err := json.Unmarshal(itinerary, &t.Itinerary); err != nil {
			return t, fmt.Errorf("decode itinerary of %s: %w", t.ID, err)
		}
		return t, nil
	})
}

func (r *Repo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return list(ctx, r.db, "posts", postColumns, func(rows pgx.Rows) (domain.Post, error) {
		var (
			p         domain.Post
			comments  []byte
			createdAt time.Time
		)
		err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.AuthorAvatar, &p.Content, &p.Images, &p.Tags,
			&p.LikeCount, &p.CommentCount, &p.ShareCount, &comments, &createdAt)
		if err != nil {
			return p, err
		}
		if err := json.Unmarshal(comments, &p.Comments); err != nil {
			return p, fmt.Errorf("decode comments of %s: %w", p.ID, err)
		}
		p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		return p, nil
	})
}

// DefaultUser returns the catalog's default user.
// Returns domain.ErrNotFound if catalog_users is empty.
func (r *Repo) DefaultUser(ctx context.Context) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("catalog_users").OrderBy("id").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog_users query: %w", err)
	}

	var (
		u     domain.User
		prefs []byte
	)
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	if err := row.Scan(&u.ID, &u.Name, &u.Avatar, &u.SavedPlaces, &u.SavedTours, &prefs); err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	if err := json.Unmarshal(prefs, &u.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &u, nil
}

func list[T any](ctx context.Context, db postgres.Querier, table string, columns []string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "")
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, postgres.MapError(err, table, "")
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, "")
	}
	return out, nil
}
