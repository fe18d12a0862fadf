package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
)

func vendor(group uuid.UUID, category db_models.Category, name string) *db_models.Selection {
	key := db_models.VendorKeyOf(group, category)
	return &db_models.Selection{
		GroupID:   group,
		Category:  category,
		Kind:      db_models.KindVendor,
		VendorKey: &key,
		Name:      name,
	}
}

func TestReplaceVendorKeepsOnePerCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1 := uuid.New()

	require.NoError(t, repo.ReplaceVendor(ctx, vendor(g1, db_models.CategoryStudio, "A")))
	require.NoError(t, repo.ReplaceVendor(ctx, vendor(g1, db_models.CategoryStudio, "B")))
	require.NoError(t, repo.ReplaceVendor(ctx, vendor(g1, db_models.CategoryDress, "C")))

	sels, err := repo.ListByGroup(ctx, g1)
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, "B", sels[0].Name)
	assert.Equal(t, "C", sels[1].Name)
}

func TestDuplicateVendorKeyIsRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1 := uuid.New()

	require.NoError(t, repo.Create(ctx, vendor(g1, db_models.CategoryHall, "A")))
	err := repo.Create(ctx, vendor(g1, db_models.CategoryHall, "B"))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestPlacesAllowMany(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1 := uuid.New()

	for _, name := range []string{"한정식 A", "한정식 B", "한정식 C"} {
		require.NoError(t, repo.Create(ctx, &db_models.Selection{
			GroupID: g1, Category: db_models.CategoryMeeting, Kind: db_models.KindPlace, Name: name,
		}))
	}
	sels, err := repo.ListByGroup(ctx, g1)
	require.NoError(t, err)
	assert.Len(t, sels, 3)
	assert.Equal(t, "한정식 A", sels[0].Name)
}

func TestGroupsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1, g2 := uuid.New(), uuid.New()

	sel := vendor(g1, db_models.CategoryHall, "A")
	require.NoError(t, repo.ReplaceVendor(ctx, sel))
	require.NoError(t, repo.ReplaceVendor(ctx, vendor(g2, db_models.CategoryHall, "B")))

	got, err := repo.GetByID(ctx, g2, sel.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := repo.Delete(ctx, g2, sel.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.ToggleConfirmed(ctx, g2, sel.ID)
	require.NoError(t, err)
	got, err = repo.GetByID(ctx, g1, sel.ID)
	require.NoError(t, err)
	assert.False(t, got.IsConfirmed)
}

func TestToggleConfirmed(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1 := uuid.New()
	sel := vendor(g1, db_models.CategoryMakeup, "A")
	require.NoError(t, repo.ReplaceVendor(ctx, sel))

	got, err := repo.ToggleConfirmed(ctx, g1, sel.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	got, err = repo.ToggleConfirmed(ctx, g1, sel.ID)
	require.NoError(t, err)
	assert.False(t, got.IsConfirmed)

	got, err = repo.ToggleConfirmed(ctx, g1, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteIsHard(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSelectionRepository(db)
	g1 := uuid.New()
	sel := vendor(g1, db_models.CategoryMakeup, "A")
	require.NoError(t, repo.ReplaceVendor(ctx, sel))

	deleted, err := repo.Delete(ctx, g1, sel.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, db.Model(&db_models.Selection{}).Count(&count).Error)
	assert.Zero(t, count)

	// the vendor key is free again
	require.NoError(t, repo.Create(ctx, vendor(g1, db_models.CategoryMakeup, "B")))
}

func TestUpdateNotes(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository(newTestDB(t))
	g1 := uuid.New()
	sel := vendor(g1, db_models.CategoryDress, "A")
	require.NoError(t, repo.ReplaceVendor(ctx, sel))

	got, err := repo.UpdateNotes(ctx, g1, sel.ID, strPtr("300만원"), nil)
	require.NoError(t, err)
	require.NotNil(t, got.PriceRange)
	assert.Equal(t, "300만원", *got.PriceRange)
	assert.Nil(t, got.Memo)

	got, err = repo.UpdateNotes(ctx, g1, sel.ID, nil, strPtr("2차 가봉 예약"))
	require.NoError(t, err)
	assert.Equal(t, "300만원", *got.PriceRange)
	assert.Equal(t, "2차 가봉 예약", *got.Memo)

	got, err = repo.UpdateNotes(ctx, g1, uuid.New(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
