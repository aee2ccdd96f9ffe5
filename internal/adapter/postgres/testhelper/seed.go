package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vntravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/seed"
	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// SeedCatalog imports the embedded seed dataset and returns it. Rows that
// already exist are left alone, so calling it from several tests is safe.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) *domain.Dataset {
	t.Helper()

	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("testhelper: load seed dataset: %v", err)
	}

	repo := catalog.New(pool)
	err = postgres.NewTxManager(pool).RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := repo.ImportDataset(ctx, ds)
		return err
	})
	if err != nil {
		t.Fatalf("testhelper: import seed dataset: %v", err)
	}

	return ds
}
