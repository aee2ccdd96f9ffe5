// Command catalog-import loads a catalog dataset into PostgreSQL. It applies
// pending migrations first and inserts every record in one transaction;
// records that already exist are left untouched, so reruns are safe.
//
// Usage: catalog-import [-config config.yaml] [-file dataset.json]
// Without -file the embedded seed dataset is imported. Without -config the
// usual CONFIG_PATH lookup applies.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vntravel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/vntravel-backend/internal/adapter/seed"
	"github.com/heartmarshall/vntravel-backend/internal/app"
	"github.com/heartmarshall/vntravel-backend/internal/config"
	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

func main() {
	file := flag.String("file", "", "dataset JSON file (default: embedded seed)")
	configPath := flag.String("config", "", "config YAML file (default: CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("database.dsn is required")
	}

	logger := app.NewLogger(cfg.Log)

	ds, err := loadDataset(*file)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := catalog.New(pool)
	tx := postgres.NewTxManager(pool)

	var stats catalog.ImportStats
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		stats, err = repo.ImportDataset(ctx, ds)
		return err
	})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.Int("migrations_applied", applied),
		slog.Int64("provinces", stats.Provinces),
		slog.Int64("places", stats.Places),
		slog.Int64("guides", stats.Guides),
		slog.Int64("tours", stats.Tours),
		slog.Int64("posts", stats.Posts),
		slog.Int64("users", stats.Users),
		slog.Int64("total", stats.Total()),
	)
}

func loadDataset(path string) (*domain.Dataset, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
