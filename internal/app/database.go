// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/guttosm/bakery-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CatalogRepo           repository.CatalogRepositoryInterface
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	DB                    *repository.MongoDB
}

// InitializeDatabase initializes the MongoDB connection and creates the
// catalog repository. Returns nil if the database is disabled or the
// connection fails; the built-in option tables serve the catalog then.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with built-in catalog")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	if err := seedDefaultCatalogs(catalogRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default catalogs")
	}

	return &DatabaseComponents{
		CatalogRepo:           catalogRepoWithCB,
		CatalogCircuitBreaker: catalogCB,
		DB:                    db,
	}
}

// seedDefaultCatalogs stores the built-in option tables for any category
// that has no active configuration yet.
func seedDefaultCatalogs(repo repository.CatalogRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, category := range model.Categories {
		active, err := repo.GetActive(ctx, category)
		if err != nil {
			return err
		}
		if active != nil {
			continue
		}

		defaults := service.DefaultOptions(category)
		if len(defaults) == 0 {
			continue
		}
		if _, err := repo.Create(ctx, category, defaults, "system"); err != nil {
			return err
		}
		log.Info().Str("category", string(category)).Msg("Seeded default catalog")
	}

	return nil
}
