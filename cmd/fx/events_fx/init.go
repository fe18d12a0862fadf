package events_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"weddy/internal/repositories"
	"weddy/internal/services"
)

var Module = fx.Provide(provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(repo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(repo)
}
