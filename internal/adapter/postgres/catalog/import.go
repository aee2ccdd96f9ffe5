package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/vntravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// ImportStats counts rows inserted per table. Rows whose id already exists
// are skipped and not counted.
type ImportStats struct {
	Provinces int64
	Places    int64
	Guides    int64
	Tours     int64
	Posts     int64
	Users     int64
}

// Total returns the number of inserted rows across all tables.
func (s ImportStats) Total() int64 {
	return s.Provinces + s.Places + s.Guides + s.Tours + s.Posts + s.Users
}

// ImportDataset inserts every record of ds, parents first. Run it inside
// TxManager.RunInTx so a failed table leaves nothing behind.
func (r *Repo) ImportDataset(ctx context.Context, ds *domain.Dataset) (ImportStats, error) {
	var (
		stats ImportStats
		err   error
	)

	if err := ds.Validate(); err != nil {
		return stats, err
	}

	if stats.Provinces, err = r.insert(ctx, "provinces", provinceColumns, len(ds.Provinces), func(i int) ([]any, error) {
		p := ds.Provinces[i]
		return []any{p.ID, p.Name, string(p.Region), p.TotalPlaces, p.TotalTours, p.TotalGuides}, nil
	}); err != nil {
		return stats, err
	}

	if stats.Places, err = r.insert(ctx, "places", placeColumns, len(ds.Places), func(i int) ([]any, error) {
		p := ds.Places[i]
		return []any{p.ID, p.Name, string(p.Category), p.ProvinceID, p.Address, p.Description,
			p.Rating, p.ReviewCount, nonNil(p.Images), p.OpeningHours}, nil
	}); err != nil {
		return stats, err
	}

	if stats.Guides, err = r.insert(ctx, "guides", guideColumns, len(ds.Guides), func(i int) ([]any, error) {
		g := ds.Guides[i]
		return []any{g.ID, g.Name, g.ProvinceID, g.Avatar, g.Rating, g.ReviewCount, g.TotalTours,
			nonNil(g.Specialties), nonNil(g.Languages), g.HourlyRate, g.IsOnline, g.IsVerified, g.ResponseTime}, nil
	}); err != nil {
		return stats, err
	}

	if stats.Tours, err = r.insert(ctx, "tours", tourColumns, len(ds.Tours), func(i int) ([]any, error) {
		t := ds.Tours[i]
		itinerary, err := marshalList(t.Itinerary)
		if err != nil {
			return nil, fmt.Errorf("encode itinerary of %s: %w", t.ID, err)
		}
		return []any{t.ID, t.Name, t.ProvinceID, t.GuideID, t.Description, t.Price, t.OriginalPrice,
			t.DurationDays, t.GroupSize.Min, t.GroupSize.Max, t.Rating, t.ReviewCount, nonNil(t.Images),
			itinerary, nonNil(t.Includes), nonNil(t.Excludes), nonNil(t.AvailableDates), nonNil(t.Categories)}, nil
	}); err != nil {
		return stats, err
	}

	if stats.Posts, err = r.insert(ctx, "posts", postColumns, len(ds.Posts), func(i int) ([]any, error) {
		p := ds.Posts[i]
		comments, err := marshalList(p.Comments)
		if err != nil {
			return nil, fmt.Errorf("encode comments of %s: %w", p.ID, err)
		}
		createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("posts[%d]", i), "createdAt must be RFC 3339")
		}
		return []any{p.ID, p.AuthorID, p.AuthorName, p.AuthorAvatar, p.Content, nonNil(p.Images), nonNil(p.Tags),
			p.LikeCount, p.CommentCount, p.ShareCount, comments, createdAt}, nil
	}); err != nil {
		return stats, err
	}

	u := ds.User
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return stats, fmt.Errorf("encode preferences: %w", err)
	}
	if stats.Users, err = r.insertRows(ctx, "catalog_users", userColumns, [][]any{
		{u.ID, u.Name, u.Avatar, nonNil(u.SavedPlaces), nonNil(u.SavedTours), prefs},
	}); err != nil {
		return stats, err
	}

	return stats, nil
}

func (r *Repo) insert(ctx context.Context, table string, columns []string, n int, values func(i int) ([]any, error)) (int64, error) {
	rows := make([][]any, 0, n)
	for i := range n {
		v, err := values(i)
		if err != nil {
			return 0, err
		}
		rows = append(rows, append(v, i))
	}
	return r.insertRows(ctx, table, append(append([]string{}, columns...), "position"), rows)
}

func (r *Repo) insertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	b := psql.Insert(table).Columns(columns...)
	for _, v := range rows {
		b = b.Values(v...)
	}
	query, args, err := b.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s insert: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, table, "")
	}
	return tag.RowsAffected(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}
