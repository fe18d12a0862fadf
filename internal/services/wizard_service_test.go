package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddy/internal/models/db_models"
	"weddy/pkg/utils"
)

func TestWizardSessionFlow(t *testing.T) {
	svc := NewWizardService(time.Minute)
	actor := member()

	state, err := svc.Start(actor, db_models.CategoryDress)
	require.NoError(t, err)
	id := state.SessionID
	assert.Equal(t, 1, state.CurrentStep)
	assert.Equal(t, 3, state.TotalSteps)
	require.NotNil(t, state.Question)
	assert.True(t, state.Question.Required)

	_, err = svc.Skip(actor, id)
	assert.ErrorIs(t, err, utils.ErrInvalidInput, "region cannot be skipped")

	state, err = svc.Answer(actor, id, "서울")
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStep)

	state, err = svc.Answer(actor, id, "저가")
	require.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStep)
	assert.False(t, state.IsComplete)

	_, err = svc.Build(actor, id)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	state, err = svc.Skip(actor, id)
	require.NoError(t, err)
	assert.True(t, state.IsComplete)
	assert.InDelta(t, 1.0, state.Progress, 1e-9)

	req, err := svc.Build(actor, id)
	require.NoError(t, err)
	assert.Equal(t, db_models.CategoryDress, req.Category)
	assert.Equal(t, "서울", req.Region)
	assert.Equal(t, map[string]string{"price": "저가"}, req.Facets)

	state, err = svc.Back(actor, id)
	require.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStep)
	assert.False(t, state.IsComplete)

	state, err = svc.GoTo(actor, id, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)

	got, err := svc.Get(actor, id)
	require.NoError(t, err)
	assert.Equal(t, state.CurrentStep, got.CurrentStep)
}

func TestWizardSessionIsPrivate(t *testing.T) {
	svc := NewWizardService(time.Minute)
	owner := member()

	state, err := svc.Start(owner, db_models.CategoryPhotoSpot)
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalSteps)

	_, err = svc.Answer(Actor{UserID: uuid.New()}, state.SessionID, "제주")
	assert.ErrorIs(t, err, utils.ErrWizardSessionNotFound)

	_, err = svc.Get(owner, "missing")
	assert.ErrorIs(t, err, utils.ErrWizardSessionNotFound)

	_, err = svc.Get(Actor{}, state.SessionID)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestWizardStartRejectsUnknownCategory(t *testing.T) {
	svc := NewWizardService(time.Minute)

	_, err := svc.Start(member(), "florist")
	assert.ErrorIs(t, err, utils.ErrInvalidCategory)
	_, err = svc.Start(Actor{}, db_models.CategoryHall)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestWizardSessionExpires(t *testing.T) {
	svc := NewWizardService(20 * time.Millisecond)
	actor := member()

	state, err := svc.Start(actor, db_models.CategoryHall)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)
	_, err = svc.Get(actor, state.SessionID)
	assert.ErrorIs(t, err, utils.ErrWizardSessionNotFound)
}
