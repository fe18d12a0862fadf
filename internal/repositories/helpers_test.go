package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"weddy/internal/config"
	"weddy/internal/infra"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.InitDatabase(config.StoreConfig{
		Driver:      "sqlite",
		DatabaseURL: filepath.Join(t.TempDir(), "weddy.db"),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	t.Cleanup(func() { infra.CloseDatabase(db) })
	return db
}

func strPtr(s string) *string { return &s }
