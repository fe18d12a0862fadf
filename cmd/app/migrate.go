package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weddy/internal/infra"
	"weddy/internal/repositories"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and purge expired cache rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := infra.InitDatabase(cfg.Store)
		if err != nil {
			return err
		}
		defer infra.CloseDatabase(db)

		if err := infra.AutoMigrate(db); err != nil {
			return err
		}

		ctx := cmd.Context()
		geo, err := repositories.NewGeocodeCacheRepository(db).DeleteExpired(ctx)
		if err != nil {
			return err
		}
		enr, err := repositories.NewEnrichmentCacheRepository(db).DeleteExpired(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("migration complete",
			zap.Int64("expired_geocodes", geo),
			zap.Int64("expired_enrichments", enr),
		)
		return nil
	},
}
