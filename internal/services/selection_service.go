package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/repositories"
	"weddy/pkg/utils"
)

type SelectionServiceInterface interface {
	// AddSelection replaces the group's vendor of the same category, or
	// appends when the category holds places.
	AddSelection(ctx context.Context, actor Actor, req request_models.AddSelectionRequest) (*response_models.Selection, error)
	RemoveSelection(ctx context.Context, actor Actor, id uuid.UUID) error
	ToggleConfirmed(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.Selection, error)
	UpdateSelection(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateSelectionRequest) (*response_models.Selection, error)
	ListSelections(ctx context.Context, actor Actor) ([]response_models.Selection, error)
}

type SelectionService struct {
	repo  repositories.SelectionRepository
	locks *KeyedMutex
}

func NewSelectionService(repo repositories.SelectionRepository, locks *KeyedMutex) SelectionServiceInterface {
	return &SelectionService{repo: repo, locks: locks}
}

func selectionLockKey(groupID uuid.UUID, category db_models.Category) string {
	return db_models.VendorKeyOf(groupID, category)
}

func (s *SelectionService) AddSelection(ctx context.Context, actor Actor, req request_models.AddSelectionRequest) (*response_models.Selection, error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	candidate, err := CandidateFromInput(req.Candidate)
	if err != nil {
		return nil, err
	}

	sel := &db_models.Selection{
		GroupID:      actor.GroupID,
		CreatedBy:    actor.UserID,
		Category:     candidate.Category,
		Kind:         candidate.Category.Kind(),
		Name:         candidate.Name,
		Address:      candidate.PreferredAddress(),
		Phone:        candidate.Phone,
		ExternalLink: candidate.ExternalLink,
		PriceRange:   req.PriceRange,
		Memo:         req.Memo,
	}

	unlock := s.locks.Lock(selectionLockKey(actor.GroupID, sel.Category))
	defer unlock()

	if sel.Kind == db_models.KindVendor {
		key := db_models.VendorKeyOf(actor.GroupID, sel.Category)
		sel.VendorKey = &key
		err = s.repo.ReplaceVendor(ctx, sel)
	} else {
		err = s.repo.Create(ctx, sel)
	}
	if err != nil {
		return nil, registryError("add selection", err)
	}

	out := SelectionResponse(*sel)
	return &out, nil
}

// lockExisting loads the selection and takes its category lock.
func (s *SelectionService) lockExisting(ctx context.Context, actor Actor, id uuid.UUID) (func(), error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	sel, err := s.repo.GetByID(ctx, actor.GroupID, id)
	if err != nil {
		return nil, registryError("get selection", err)
	}
	if sel == nil {
		return nil, utils.ErrSelectionNotFound
	}
	return s.locks.Lock(selectionLockKey(actor.GroupID, sel.Category)), nil
}

func (s *SelectionService) RemoveSelection(ctx context.Context, actor Actor, id uuid.UUID) error {
	unlock, err := s.lockExisting(ctx, actor, id)
	if err != nil {
		return err
	}
	defer unlock()

	deleted, err := s.repo.Delete(ctx, actor.GroupID, id)
	if err != nil {
		return registryError("remove selection", err)
	}
	if !deleted {
		return utils.ErrSelectionNotFound
	}
	return nil
}

func (s *SelectionService) ToggleConfirmed(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.Selection, error) {
	unlock, err := s.lockExisting(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sel, err := s.repo.ToggleConfirmed(ctx, actor.GroupID, id)
	if err != nil {
		return nil, registryError("toggle selection", err)
	}
	if sel == nil {
		return nil, utils.ErrSelectionNotFound
	}
	out := SelectionResponse(*sel)
	return &out, nil
}

func (s *SelectionService) UpdateSelection(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateSelectionRequest) (*response_models.Selection, error) {
	unlock, err := s.lockExisting(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sel, err := s.repo.UpdateNotes(ctx, actor.GroupID, id, req.PriceRange, req.Memo)
	if err != nil {
		return nil, registryError("update selection", err)
	}
	if sel == nil {
		return nil, utils.ErrSelectionNotFound
	}
	out := SelectionResponse(*sel)
	return &out, nil
}

func (s *SelectionService) ListSelections(ctx context.Context, actor Actor) ([]response_models.Selection, error) {
	if err := actor.requireGroup(); err != nil {
		return nil, err
	}
	sels, err := s.repo.ListByGroup(ctx, actor.GroupID)
	if err != nil {
		return nil, registryError("list selections", err)
	}
	out := make([]response_models.Selection, 0, len(sels))
	for _, sel := range sels {
		out = append(out, SelectionResponse(sel))
	}
	return out, nil
}

// registryError turns unique index violations from a concurrent writer into
// a conflict the caller can re-fetch and retry.
func registryError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		zap.L().Info("registry conflict", zap.String("op", op), zap.Error(err))
		return utils.ErrRegistryConflict
	}
	zap.L().Error(op, zap.Error(err))
	return utils.ErrDatabaseError
}
