package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// mockCheckService returns a canned result per path.
type mockCheckService struct {
	results  map[string]domain.FileResult
	rules    []domain.RuleInfo
	style    domain.HouseStyle
	lastOpts driving.CheckOptions
}

func (m *mockCheckService) Check(_ context.Context, path string, opts driving.CheckOptions) domain.FileResult {
	m.lastOpts = opts
	if r, ok := m.results[path]; ok {
		r.Path = path
		return r
	}
	return domain.FileResult{Path: path, Err: fmt.Errorf("%w: %s", domain.ErrUnreadableDocument, path)}
}

func (m *mockCheckService) CheckAll(ctx context.Context, paths []string, opts driving.CheckOptions) []domain.FileResult {
	out := make([]domain.FileResult, len(paths))
	for i, p := range paths {
		out[i] = m.Check(ctx, p, opts)
	}
	return out
}

func (m *mockCheckService) Inspect(_ context.Context, path string) (*domain.Document, *domain.Report, error) {
	r, ok := m.results[path]
	if !ok || r.Err != nil {
		return nil, nil, domain.ErrUnreadableDocument
	}
	return &domain.Document{Path: path}, r.Run.Report, nil
}

func (m *mockCheckService) Rules() []domain.RuleInfo  { return m.rules }
func (m *mockCheckService) Style() domain.HouseStyle { return m.style }

// mockFactory hands out one service and records the configs it was asked for.
type mockFactory struct {
	svc     *mockCheckService
	err     error
	configs []driving.CheckConfig
}

func (f *mockFactory) New(cfg driving.CheckConfig) (driving.CheckService, error) {
	f.configs = append(f.configs, cfg)
	if f.err != nil {
		return nil, f.err
	}
	return f.svc, nil
}

// mockHistoryService serves runs from a slice.
type mockHistoryService struct {
	runs    []domain.CheckRun
	forFile string
	deleted []string
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.CheckRun, error) {
	if limit > 0 && limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func (m *mockHistoryService) ListForFile(_ context.Context, path string, _ int) ([]domain.CheckRun, error) {
	m.forFile = path
	var out []domain.CheckRun
	for _, r := range m.runs {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.CheckRun, error) {
	var found *domain.CheckRun
	for i := range m.runs {
		if strings.HasPrefix(m.runs[i].ID, id) {
			if found != nil {
				return nil, domain.ErrAmbiguousID
			}
			found = &m.runs[i]
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (m *mockHistoryService) Delete(ctx context.Context, id string) error {
	run, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	m.deleted = append(m.deleted, run.ID)
	return nil
}

// mockStyleService knows the built-in profile only.
type mockStyleService struct {
	formats []string
}

func (m *mockStyleService) Load(name string) (domain.HouseStyle, error) {
	if name == "" || name == domain.DefaultStyleName {
		return domain.DefaultHouseStyle(), nil
	}
	return domain.HouseStyle{}, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
}

func (m *mockStyleService) List() ([]string, error) {
	return []string{domain.DefaultStyleName, "journal"}, nil
}

func (m *mockStyleService) Export(hs domain.HouseStyle, format string) ([]byte, error) {
	m.formats = append(m.formats, format)
	return []byte(format + ":" + hs.Name + "\n"), nil
}

// mockSettingsService keeps settings in memory.
type mockSettingsService struct {
	settings domain.Settings
	path     string
}

func (m *mockSettingsService) Get() domain.Settings { return m.settings }

func (m *mockSettingsService) Set(key, value string) error {
	switch key {
	case "check.suffix":
		m.settings.Check.Suffix = value
	case "style.profile":
		m.settings.Style.Profile = value
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, key)
	}
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"check.suffix", "style.profile"}
}

func (m *mockSettingsService) Path() string { return m.path }

// runOf builds a recorded run from findings.
func runOf(id, path string, findings ...domain.Finding) *domain.CheckRun {
	report := domain.NewReport(findings)
	return &domain.CheckRun{
		ID:        id,
		Path:      path,
		Digest:    "abc123",
		StyleName: domain.DefaultStyleName,
		CheckedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		Status:    report.OverallStatus(),
		Report:    report,
	}
}

func warnFinding() domain.Finding {
	return domain.Finding{
		RuleID:         "line-spacing",
		ParagraphIndex: domain.IntPtr(3),
		Severity:       domain.SeverityWarn,
		Message:        "line spacing 1.50 lines, expected single",
		Context:        "Results\nand discussion",
	}
}

func errorFinding() domain.Finding {
	return domain.Finding{
		RuleID:   "page-size",
		Severity: domain.SeverityError,
		Message:  "page is A4, expected A5",
	}
}

// fixture holds the mocks installed for one test.
type fixture struct {
	checks   *mockCheckService
	factory  *mockFactory
	history  *mockHistoryService
	styles   *mockStyleService
	settings *mockSettingsService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	checks := &mockCheckService{
		results: map[string]domain.FileResult{
			"clean.docx": {Run: runOf("run-clean", "clean.docx")},
			"warn.docx":  {Run: runOf("run-warn", "warn.docx", warnFinding())},
			"error.docx": {Run: runOf("run-error", "error.docx", errorFinding(), warnFinding())},
		},
		rules: []domain.RuleInfo{
			{ID: "page-size", Description: "Page is A5", Scope: domain.ScopeDocument, Enabled: true},
			{ID: "font-family", Description: "Body font", Scope: domain.ScopeParagraph, Enabled: false},
		},
		style: domain.DefaultHouseStyle(),
	}
	f := &fixture{
		checks:   checks,
		factory:  &mockFactory{svc: checks},
		history:  &mockHistoryService{},
		styles:   &mockStyleService{},
		settings: &mockSettingsService{settings: domain.DefaultSettings(), path: "/home/u/.docstyle/config.toml"},
	}
	Configure(Services{
		Checks:   f.factory,
		History:  f.history,
		Styles:   f.styles,
		Settings: f.settings,
	})
	resetFlags()
	t.Cleanup(func() {
		Configure(Services{})
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return f
}

// resetFlags restores flag variables, which persist across executions.
func resetFlags() {
	verbose = false
	checkJSON, checkNoAnnotate, checkNoHistory = false, false, false
	checkSuffix, checkStyle, checkWorkers = "", "", 0
	rulesJSON, rulesStyle = false, ""
	historyLimit, historyFile, historyJSON = 20, "", false
	styleFormat = "toml"
	reviewStyle = ""
	mcpPort, mcpStyle = 0, ""
	watchDebounce = 500 * time.Millisecond
	watchNoAnnotate, watchNoHistory = false, false
	watchSuffix, watchStyle = "", ""
}

// run executes the root command with args and returns its output.
func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
