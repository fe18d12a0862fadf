package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"weddy/internal/config"
	"weddy/internal/infra"
	"weddy/pkg/geocode"
	"weddy/pkg/naver"
	"weddy/pkg/summarizer"
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

type mockNaver struct {
	mock.Mock
}

func (m *mockNaver) LocalSearch(ctx context.Context, query string, display int) (*naver.LocalResponse, error) {
	args := m.Called(ctx, query, display)
	if r := args.Get(0); r != nil {
		return r.(*naver.LocalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNaver) BlogSearch(ctx context.Context, query string, display int) (*naver.BlogResponse, error) {
	args := m.Called(ctx, query, display)
	if r := args.Get(0); r != nil {
		return r.(*naver.BlogResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (*geocode.Result, error) {
	args := m.Called(ctx, address)
	if r := args.Get(0); r != nil {
		return r.(*geocode.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, in summarizer.Input) (*summarizer.Summary, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*summarizer.Summary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSummarizer) Provider() string { return "mock" }
