package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

func TestReportStore_SaveGet(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	run := &domain.CheckRun{ID: "run-1", Path: "/a.docx", Status: domain.SeverityWarn, Report: domain.NewReport(nil)}
	require.NoError(t, store.Save(ctx, run))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityWarn, got.Status)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStore_ListOrder(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = store.Save(ctx, &domain.CheckRun{ID: "old", Path: "/a.docx", CheckedAt: base})
	_ = store.Save(ctx, &domain.CheckRun{ID: "new", Path: "/b.docx", CheckedAt: base.Add(time.Hour)})
	_ = store.Save(ctx, &domain.CheckRun{ID: "mid", Path: "/a.docx", CheckedAt: base.Add(time.Minute)})

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)

	runs, err = store.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	runs, err = store.ListByPath(ctx, "/a.docx", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "mid", runs[0].ID)
}

func TestReportStore_Delete(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	_ = store.Save(ctx, &domain.CheckRun{ID: "x"})

	require.NoError(t, store.Delete(ctx, "x"))
	assert.ErrorIs(t, store.Delete(ctx, "x"), domain.ErrNotFound)
}
