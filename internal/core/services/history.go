package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// minPrefix is the shortest ID prefix accepted by Get.
const minPrefix = 4

// HistoryService reads recorded check runs.
type HistoryService struct {
	store driven.ReportStore
}

// NewHistoryService creates a history service. store may be nil.
func NewHistoryService(store driven.ReportStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns recent runs, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.CheckRun, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.store.List(ctx, limit)
}

// ListForFile returns the runs of one file.
func (s *HistoryService) ListForFile(ctx context.Context, path string, limit int) ([]domain.CheckRun, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.store.ListByPath(ctx, absPath(path), limit)
}

// Get returns a run by full ID or by a unique prefix of at least four characters.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.CheckRun, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	run, err := s.store.Get(ctx, id)
	if err == nil || !errors.Is(err, domain.ErrNotFound) || len(id) < minPrefix {
		return run, err
	}

	runs, err := s.store.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var match *domain.CheckRun
	for i := range runs {
		if !strings.HasPrefix(runs[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrAmbiguousID, id)
		}
		match = &runs[i]
	}
	if match == nil {
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
	}
	return match, nil
}

// Delete removes one run by full ID or unique prefix.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	run, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, run.ID)
}
