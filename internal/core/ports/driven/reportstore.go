package driven

import (
	"context"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// ReportStore persists check runs.
type ReportStore interface {
	// Save stores a run. Saving an existing ID replaces it.
	Save(ctx context.Context, run *domain.CheckRun) error

	// Get returns a run by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.CheckRun, error)

	// List returns the most recent runs first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.CheckRun, error)

	// ListByPath returns runs for one file, most recent first.
	ListByPath(ctx context.Context, path string, limit int) ([]domain.CheckRun, error)

	// Delete removes a run, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
