package services

import (
	"context"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"weddy/internal/models/db_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/pkg/geocode"
	"weddy/pkg/naver"
)

type GeocodeServiceInterface interface {
	// Resolve tries native coordinates, then the secondary geocoder, and
	// settles on the unresolved tier otherwise. It never fails.
	Resolve(ctx context.Context, c response_models.Candidate) response_models.GeoResult
}

type GeocodeService struct {
	geocoder geocode.Geocoder
	cache    repositories.GeocodeCacheRepository
	ttl      time.Duration
}

// NewGeocodeService accepts a nil geocoder when no secondary service is configured.
func NewGeocodeService(geocoder geocode.Geocoder, cache repositories.GeocodeCacheRepository, ttl time.Duration) GeocodeServiceInterface {
	return &GeocodeService{geocoder: geocoder, cache: cache, ttl: ttl}
}

func (s *GeocodeService) Resolve(ctx context.Context, c response_models.Candidate) response_models.GeoResult {
	address := strings.TrimSpace(c.PreferredAddress())
	result := response_models.GeoResult{
		Tier:           response_models.GeoTierUnresolved,
		ExternalMapURL: naver.MapSearchURL(c.Name, address),
	}

	if p, ok := geocode.DecodeNative(c.MapX, c.MapY); ok {
		result.Tier = response_models.GeoTierNative
		result.Coordinate = coordinateOf(p)
		return result
	}

	if address == "" || s.geocoder == nil {
		return result
	}

	p, matched, ok := s.secondary(ctx, address)
	if ok && matched {
		result.Tier = response_models.GeoTierGeocoded
		result.Coordinate = coordinateOf(p)
	}
	return result
}

// secondary returns ok=false when the geocoder could not answer.
func (s *GeocodeService) secondary(ctx context.Context, address string) (orb.Point, bool, bool) {
	if s.cache != nil {
		entry, err := s.cache.Get(ctx, address)
		if err != nil {
			zap.L().Warn("geocode cache read", zap.String("address", address), zap.Error(err))
		} else if entry != nil {
			return orb.Point{entry.Lng, entry.Lat}, entry.Matched, true
		}
	}

	res, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		zap.L().Info("secondary geocoder failed", zap.String("address", address), zap.Error(err))
		return orb.Point{}, false, false
	}

	if s.cache != nil {
		entry := &db_models.GeocodeCache{
			Address:   address,
			Lat:       res.Point.Lat(),
			Lng:       res.Point.Lon(),
			Matched:   res.Matched,
			ExpiresAt: time.Now().UTC().Add(s.ttl),
		}
		if err := s.cache.Put(ctx, entry); err != nil {
			zap.L().Warn("geocode cache write", zap.String("address", address), zap.Error(err))
		}
	}
	return res.Point, res.Matched, true
}

func coordinateOf(p orb.Point) *response_models.Coordinate {
	return &response_models.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}
