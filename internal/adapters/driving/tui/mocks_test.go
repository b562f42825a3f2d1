package tui

import (
	"context"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// mockCheckService is a mock implementation of driving.CheckService.
type mockCheckService struct {
	doc      *domain.Document
	report   *domain.Report
	err      error
	inspects int
}

func (m *mockCheckService) Check(_ context.Context, path string, _ driving.CheckOptions) domain.FileResult {
	return domain.FileResult{Path: path, Err: m.err}
}

func (m *mockCheckService) CheckAll(ctx context.Context, paths []string, opts driving.CheckOptions) []domain.FileResult {
	out := make([]domain.FileResult, len(paths))
	for i, p := range paths {
		out[i] = m.Check(ctx, p, opts)
	}
	return out
}

func (m *mockCheckService) Inspect(_ context.Context, _ string) (*domain.Document, *domain.Report, error) {
	m.inspects++
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.doc, m.report, nil
}

func (m *mockCheckService) Rules() []domain.RuleInfo { return nil }
func (m *mockCheckService) Style() domain.HouseStyle { return domain.DefaultHouseStyle() }

func sampleDocument() *domain.Document {
	return &domain.Document{
		Path: "paper.docx",
		Paragraphs: []domain.Paragraph{
			{Index: 0, Text: "Ivanov I.I.", Alignment: domain.AlignmentRight, FontName: "Times New Roman", FontSize: 10},
			{Index: 1, Text: "Title of the paper", Alignment: domain.AlignmentCenter, FontName: "Arial", FontSize: 13},
		},
	}
}

func sampleReport() *domain.Report {
	return domain.NewReport([]domain.Finding{
		{RuleID: "authors-line", ParagraphIndex: domain.IntPtr(0), Severity: domain.SeverityOK, Message: "ok"},
		{RuleID: "font-family", ParagraphIndex: domain.IntPtr(1), Severity: domain.SeverityError, Message: "font Arial", Context: "Title of the paper"},
		{RuleID: "page-count", Severity: domain.SeverityWarn, Message: "about 5 pages"},
	})
}
