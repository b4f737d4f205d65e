package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/data"
	"github.com/mytheresa/product-categories/listing"
	"github.com/mytheresa/product-categories/models"
)

// loadCatalog reads the base tables once from the configured source.
func loadCatalog(c config.Config, log *zap.Logger) (*listing.Catalog, error) {
	var (
		tables models.Tables
		err    error
	)

	switch c.Source {
	case config.SourcePostgres:
		db, err := openDB(c.PostgresDSN)
		if err != nil {
			return nil, err
		}
		defer closeDB(db, log)

		if tables, err = models.NewCatalogRepository(db).LoadTables(); err != nil {
			return nil, err
		}
	default:
		if tables, err = data.Load(); err != nil {
			return nil, err
		}
	}

	log.Info("catalog loaded",
		zap.String("source", c.Source),
		zap.Int("users", len(tables.Users)),
		zap.Int("categories", len(tables.Categories)),
		zap.Int("products", len(tables.Products)))

	return listing.NewCatalog(tables), nil
}

func openDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
}
