package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"weddy/internal/repositories"
	"weddy/internal/services"
)

var Module = fx.Provide(providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(repo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(repo)
}
