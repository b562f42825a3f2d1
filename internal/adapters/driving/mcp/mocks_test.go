package mcp

import (
	"context"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// mockCheckService is a mock implementation of driving.CheckService.
type mockCheckService struct {
	result   domain.FileResult
	rules    []domain.RuleInfo
	style    domain.HouseStyle
	lastPath string
	lastOpts driving.CheckOptions
}

func (m *mockCheckService) Check(_ context.Context, path string, opts driving.CheckOptions) domain.FileResult {
	m.lastPath = path
	m.lastOpts = opts
	r := m.result
	r.Path = path
	return r
}

func (m *mockCheckService) CheckAll(ctx context.Context, paths []string, opts driving.CheckOptions) []domain.FileResult {
	out := make([]domain.FileResult, len(paths))
	for i, p := range paths {
		out[i] = m.Check(ctx, p, opts)
	}
	return out
}

func (m *mockCheckService) Inspect(_ context.Context, _ string) (*domain.Document, *domain.Report, error) {
	if m.result.Err != nil {
		return nil, nil, m.result.Err
	}
	return &domain.Document{}, m.result.Run.Report, nil
}

func (m *mockCheckService) Rules() []domain.RuleInfo { return m.rules }
func (m *mockCheckService) Style() domain.HouseStyle { return m.style }

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.CheckRun
	run  *domain.CheckRun
	err  error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.CheckRun, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) ListForFile(_ context.Context, _ string, _ int) ([]domain.CheckRun, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.CheckRun, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func sampleRun() *domain.CheckRun {
	return &domain.CheckRun{
		ID:        "run-1",
		Path:      "paper.docx",
		StyleName: domain.DefaultStyleName,
		Status:    domain.SeverityError,
		Report: domain.NewReport([]domain.Finding{
			{RuleID: "font-family", ParagraphIndex: domain.IntPtr(2), Severity: domain.SeverityError, Message: "font Arial", Context: "Body text"},
			{RuleID: "page-count", Severity: domain.SeverityWarn, Message: "about 5 pages"},
		}),
	}
}
