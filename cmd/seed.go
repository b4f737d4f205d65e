package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/data"
	"github.com/mytheresa/product-categories/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load the built-in catalog into postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is not set")
		}

		tables, err := data.Load()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer closeDB(db, logger)

		repo := models.NewCatalogRepository(db)
		if err := repo.Migrate(); err != nil {
			return err
		}
		if err := repo.Seed(tables); err != nil {
			return err
		}

		logger.Info("catalog seeded",
			zap.Int("users", len(tables.Users)),
			zap.Int("categories", len(tables.Categories)),
			zap.Int("products", len(tables.Products)))
		return nil
	},
}
