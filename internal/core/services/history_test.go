package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

func seedHistory(t *testing.T) *HistoryService {
	t.Helper()
	store := memory.NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"abcd1111", "abcd2222", "ef003333"} {
		require.NoError(t, store.Save(ctx, &domain.CheckRun{
			ID:        id,
			Path:      "/docs/a.docx",
			CheckedAt: base.Add(time.Duration(i) * time.Hour),
			Status:    domain.SeverityOK,
			Report:    domain.NewReport(nil),
		}))
	}
	return NewHistoryService(store)
}

func TestHistory_GetByPrefix(t *testing.T) {
	h := seedHistory(t)
	ctx := context.Background()

	run, err := h.Get(ctx, "abcd1111")
	require.NoError(t, err)
	assert.Equal(t, "abcd1111", run.ID)

	run, err = h.Get(ctx, "ef00")
	require.NoError(t, err)
	assert.Equal(t, "ef003333", run.ID)

	_, err = h.Get(ctx, "abcd")
	assert.ErrorIs(t, err, domain.ErrAmbiguousID)

	_, err = h.Get(ctx, "ef0")
	assert.ErrorIs(t, err, domain.ErrNotFound, "prefix too short")

	_, err = h.Get(ctx, "9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_ListAndDelete(t *testing.T) {
	h := seedHistory(t)
	ctx := context.Background()

	runs, err := h.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "ef003333", runs[0].ID)

	runs, err = h.ListForFile(ctx, "/docs/a.docx", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	require.NoError(t, h.Delete(ctx, "ef00"))
	runs, err = h.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestHistory_Disabled(t *testing.T) {
	h := NewHistoryService(nil)
	ctx := context.Background()

	_, err := h.List(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
	_, err = h.ListForFile(ctx, "a", 0)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
	_, err = h.Get(ctx, "abcd")
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
	assert.ErrorIs(t, h.Delete(ctx, "abcd"), domain.ErrHistoryDisabled)
}
