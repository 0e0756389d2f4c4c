package main

import (
	"context"
	"fmt"
	"time"

	catalogrepository "tourenzo/internal/catalog/repository"
	"tourenzo/internal/catalog/seed"
	catalogservice "tourenzo/internal/catalog/service"
	mongoMigration "tourenzo/internal/migrations/mongo"
	"tourenzo/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.SetMongo()

	cfg.Log.Info("Starting Mongo migration job")
	err := migrate(ctx, cfg)
	cfg.GracefulShutdown()
	if err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
}

// migrate applies schemas and indexes, then seeds the catalog if it is empty.
func migrate(ctx context.Context, cfg *config.Config) error {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		return err
	}

	catalog := catalogservice.NewCatalogService(catalogrepository.NewMongoPackageRepository(cfg), seed.Packages, cfg)
	result, err := catalog.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	cfg.Log.Info("Migration completed successfully", "seed", result.Message, "inserted", result.Inserted)
	return nil
}
