package geocode_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"weddy/internal/config"
	"weddy/internal/repositories"
	"weddy/internal/services"
	"weddy/pkg/geocode"
)

var Module = fx.Provide(provideGeocoder, provideGeocodeCache, provideGeocodeService)

func provideGeocoder(cfg *config.Config) geocode.Geocoder {
	if cfg.Geocode.GoogleKey == "" {
		zap.L().Info("no secondary geocoder configured, candidates without coordinates stay unresolved")
		return nil
	}
	return geocode.NewGoogle(cfg.Geocode.GoogleKey, geocode.WithBaseURL(cfg.Geocode.BaseURL))
}

func provideGeocodeCache(db *gorm.DB) repositories.GeocodeCacheRepository {
	return repositories.NewGeocodeCacheRepository(db)
}

func provideGeocodeService(cfg *config.Config, geocoder geocode.Geocoder, cache repositories.GeocodeCacheRepository) services.GeocodeServiceInterface {
	return services.NewGeocodeService(geocoder, cache, time.Duration(cfg.Geocode.CacheTTLHours)*time.Hour)
}
