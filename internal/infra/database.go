package infra

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weddy/internal/config"
	"weddy/internal/models/db_models"
)

// InitDatabase opens the configured store. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey on both drivers.
func InitDatabase(cfg config.StoreConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("infra: unsupported store driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, eris.Wrapf(err, "infra: connect %s", cfg.Driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, eris.Wrap(err, "infra: get sql.DB")
	}
	if cfg.Driver == "sqlite" {
		// SQLite allows a single writer; serialize through one connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&db_models.Selection{},
		&db_models.Place{},
		&db_models.PlanEvent{},
		&db_models.GeocodeCache{},
		&db_models.EnrichmentCache{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return eris.Wrap(err, "infra: auto migrate")
	}
	return nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.L().Error("close database connection", zap.Error(err))
	} else {
		zap.L().Info("database connection closed")
	}
}
