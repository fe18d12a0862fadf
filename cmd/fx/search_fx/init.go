package search_fx

import (
	"go.uber.org/fx"

	"weddy/internal/config"
	"weddy/internal/repositories"
	"weddy/internal/services"
	"weddy/pkg/naver"
)

var Module = fx.Provide(provideSearchService)

func provideSearchService(
	cfg *config.Config,
	client naver.Client,
	selections repositories.SelectionRepository,
	tracker *services.ViewTracker,
) services.SearchServiceInterface {
	return services.NewSearchService(client, selections, tracker, cfg.Naver.Display)
}
