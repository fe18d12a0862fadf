package selection_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"weddy/internal/repositories"
	"weddy/internal/services"
)

var Module = fx.Provide(provideSelectionRepo, provideSelectionService)

func provideSelectionRepo(db *gorm.DB) repositories.SelectionRepository {
	return repositories.NewSelectionRepository(db)
}

func provideSelectionService(repo repositories.SelectionRepository) services.SelectionServiceInterface {
	return services.NewSelectionService(repo, services.NewKeyedMutex())
}
