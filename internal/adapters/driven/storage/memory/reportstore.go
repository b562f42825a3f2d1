package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu   sync.RWMutex
	runs map[string]domain.CheckRun
}

// NewReportStore creates an empty store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		runs: make(map[string]domain.CheckRun),
	}
}

// Save stores or replaces a run.
func (s *ReportStore) Save(_ context.Context, run *domain.CheckRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// Get retrieves a run by ID.
func (s *ReportStore) Get(_ context.Context, id string) (*domain.CheckRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// List returns runs newest first.
func (s *ReportStore) List(_ context.Context, limit int) ([]domain.CheckRun, error) {
	return s.filter(func(domain.CheckRun) bool { return true }, limit), nil
}

// ListByPath returns runs of one file newest first.
func (s *ReportStore) ListByPath(_ context.Context, path string, limit int) ([]domain.CheckRun, error) {
	return s.filter(func(r domain.CheckRun) bool { return r.Path == path }, limit), nil
}

// Delete removes a run.
func (s *ReportStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}

func (s *ReportStore) filter(keep func(domain.CheckRun) bool, limit int) []domain.CheckRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CheckRun, 0, len(s.runs))
	for _, r := range s.runs {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckedAt.Equal(out[j].CheckedAt) {
			return out[i].CheckedAt.After(out[j].CheckedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
