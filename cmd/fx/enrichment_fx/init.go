package enrichment_fx

import (
	"context"
	"io"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"weddy/internal/config"
	"weddy/internal/repositories"
	"weddy/internal/services"
	"weddy/pkg/naver"
	"weddy/pkg/summarizer"
)

var Module = fx.Provide(
	provideSummarizer,
	provideEnrichmentCache,
	provideEnrichmentService,
	services.NewViewTracker,
	services.NewDetailService,
)

func provideSummarizer(lc fx.Lifecycle, cfg *config.Config) summarizer.Summarizer {
	model := cfg.SummarizerModel()
	if model.Key == "" {
		zap.L().Warn("summarizer key is not configured, summaries are disabled", zap.String("provider", cfg.Summarizer.Provider))
		return nil
	}

	sum, err := summarizer.New(context.Background(), summarizer.Config{
		Provider: cfg.Summarizer.Provider,
		Key:      model.Key,
		Model:    model.Model,
	})
	if err != nil {
		zap.L().Error("init summarizer, summaries are disabled", zap.Error(err))
		return nil
	}
	if closer, ok := sum.(io.Closer); ok {
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return closer.Close() }})
	}
	return sum
}

func provideEnrichmentCache(db *gorm.DB) repositories.EnrichmentCacheRepository {
	return repositories.NewEnrichmentCacheRepository(db)
}

func provideEnrichmentService(
	cfg *config.Config,
	client naver.Client,
	sum summarizer.Summarizer,
	store repositories.EnrichmentCacheRepository,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(client, sum, store, services.EnrichmentConfig{
		ReviewDisplay:  cfg.Naver.ReviewDisplay,
		CacheTTL:       time.Duration(cfg.Enrichment.CacheTTLMinutes) * time.Minute,
		SummaryTimeout: time.Duration(cfg.Summarizer.TimeoutSecs) * time.Second,
	})
}
