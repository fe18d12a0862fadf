package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddy/internal/models/db_models"
)

func TestEventLog(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t))
	g1, g2 := uuid.New(), uuid.New()

	for _, ev := range []*db_models.PlanEvent{
		{GroupID: g1, Date: "2026-05-02", Kind: db_models.EventSchedule, Title: "드레스 투어"},
		{GroupID: g1, Date: "2026-05-01", Kind: db_models.EventMemo, Title: "예산 정리"},
		{GroupID: g1, Date: "2026-05-02", Kind: db_models.EventChecklist, Title: "청첩장 샘플"},
		{GroupID: g1, Date: "2026-06-10", Kind: db_models.EventSchedule, Title: "본식"},
		{GroupID: g2, Date: "2026-05-02", Kind: db_models.EventSchedule, Title: "other"},
	} {
		require.NoError(t, repo.Append(ctx, ev))
	}

	day, err := repo.ListByDate(ctx, g1, "2026-05-02")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "드레스 투어", day[0].Title)
	assert.Equal(t, "청첩장 샘플", day[1].Title)

	may, err := repo.ListBetween(ctx, g1, "2026-05-01", "2026-05-31")
	require.NoError(t, err)
	require.Len(t, may, 3)
	assert.Equal(t, "2026-05-01", may[0].Date)
}
