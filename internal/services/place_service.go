package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/pkg/utils"
)

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, actor Actor, req request_models.CreatePlaceRequest) (*response_models.Place, error)
	UpdatePlace(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdatePlaceRequest) (*response_models.Place, error)
	DeletePlace(ctx context.Context, actor Actor, id uuid.UUID) error
	GetPlace(ctx context.Context, id uuid.UUID) (*response_models.Place, error)
	ListPlaces(ctx context.Context, q request_models.ListPlacesQuery) ([]response_models.Place, error)

	// SetFeaturedSlot puts placeID into slot, or empties the slot when
	// placeID is nil. The previous occupant is unfeatured in the same transaction.
	SetFeaturedSlot(ctx context.Context, actor Actor, slot int, placeID *uuid.UUID) ([]response_models.FeaturedSlot, error)
	ListFeatured(ctx context.Context) ([]response_models.FeaturedSlot, error)
}

type PlaceService struct {
	repo repositories.PlaceRepository
	// featuredMu serializes slot writes; a move touches two slots at once.
	featuredMu sync.Mutex
}

func NewPlaceService(repo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{repo: repo}
}

func (s *PlaceService) CreatePlace(ctx context.Context, actor Actor, req request_models.CreatePlaceRequest) (*response_models.Place, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	place := &db_models.Place{}
	if err := applyPlace(place, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, place); err != nil {
		return nil, registryError("create place", err)
	}
	out := PlaceResponse(*place)
	return &out, nil
}

func (s *PlaceService) UpdatePlace(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdatePlaceRequest) (*response_models.Place, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, registryError("get place", err)
	}
	if existing == nil {
		return nil, utils.ErrPlaceNotFound
	}
	if err := applyPlace(existing, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPlaceNotFound
		}
		return nil, registryError("update place", err)
	}
	out := PlaceResponse(*existing)
	return &out, nil
}

func applyPlace(p *db_models.Place, req request_models.CreatePlaceRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return utils.ErrInvalidInput
	}
	if !req.Category.Valid() {
		return utils.ErrInvalidCategory
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return utils.ErrInvalidInput
	}
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180) {
		return utils.ErrInvalidInput
	}
	p.Name = name
	p.Category = req.Category
	p.Address = strings.TrimSpace(req.Address)
	p.RoadAddress = strings.TrimSpace(req.RoadAddress)
	p.Phone = strings.TrimSpace(req.Phone)
	p.ExternalLink = safeLink(req.ExternalLink)
	p.Description = strings.TrimSpace(req.Description)
	p.Latitude = req.Latitude
	p.Longitude = req.Longitude
	return nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	s.featuredMu.Lock()
	defer s.featuredMu.Unlock()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return registryError("delete place", err)
	}
	if !deleted {
		return utils.ErrPlaceNotFound
	}
	return nil
}

func (s *PlaceService) GetPlace(ctx context.Context, id uuid.UUID) (*response_models.Place, error) {
	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, registryError("get place", err)
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	out := PlaceResponse(*place)
	return &out, nil
}

func (s *PlaceService) ListPlaces(ctx context.Context, q request_models.ListPlacesQuery) ([]response_models.Place, error) {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 20
	}
	if q.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if q.Category != "" && !q.Category.Valid() {
		return nil, utils.ErrInvalidCategory
	}

	places, err := s.repo.List(ctx, q.Category, q.Page, q.PageSize)
	if err != nil {
		return nil, registryError("list places", err)
	}
	out := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceResponse(p))
	}
	return out, nil
}

func (s *PlaceService) SetFeaturedSlot(ctx context.Context, actor Actor, slot int, placeID *uuid.UUID) ([]response_models.FeaturedSlot, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if slot < 0 || slot >= db_models.FeaturedSlotCount {
		return nil, utils.ErrInvalidSlot
	}

	s.featuredMu.Lock()
	err := s.repo.SetFeaturedSlot(ctx, slot, placeID)
	s.featuredMu.Unlock()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPlaceNotFound
		}
		return nil, registryError("set featured slot", err)
	}
	return s.ListFeatured(ctx)
}

func (s *PlaceService) ListFeatured(ctx context.Context) ([]response_models.FeaturedSlot, error) {
	places, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, registryError("list featured", err)
	}
	slots := make([]response_models.FeaturedSlot, db_models.FeaturedSlotCount)
	for i := range slots {
		slots[i].Slot = i
	}
	for _, p := range places {
		if p.FeaturedSlot == nil || *p.FeaturedSlot < 0 || *p.FeaturedSlot >= db_models.FeaturedSlotCount {
			continue
		}
		resp := PlaceResponse(p)
		slots[*p.FeaturedSlot].Place = &resp
	}
	return slots, nil
}
