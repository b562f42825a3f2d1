package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// Ensure CheckService implements the interface.
var _ driving.CheckService = (*CheckService)(nil)

// CheckService runs load, evaluate and annotate for each file.
type CheckService struct {
	loader    driven.DocumentLoader
	rules     driven.RuleSet
	evaluator *Evaluator
	annotator *Annotator
	store     driven.ReportStore
	workers   int
	now       func() time.Time
}

// NewCheckService creates a check service.
// store may be nil, in which case runs are not recorded.
func NewCheckService(
	loader driven.DocumentLoader,
	rules driven.RuleSet,
	annotator *Annotator,
	store driven.ReportStore,
	workers int,
) *CheckService {
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	if annotator == nil {
		annotator = NewAnnotator(domain.DefaultErrorColor, domain.DefaultWarnColor)
	}
	return &CheckService{
		loader:    loader,
		rules:     rules,
		evaluator: NewEvaluator(),
		annotator: annotator,
		store:     store,
		workers:   workers,
		now:       time.Now,
	}
}

// Check processes one file. Load and annotation failures are reported
// on the result; the file never aborts a batch.
func (s *CheckService) Check(ctx context.Context, path string, opts driving.CheckOptions) domain.FileResult {
	result := domain.FileResult{Path: path}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	defer logger.Timed("check %s", path)()
	doc, src, err := s.loader.Load(ctx, path)
	if err != nil {
		logger.Warn("%s: %v", path, err)
		result.Err = err
		return result
	}
	defer func() { _ = src.Close() }()
	logger.Debug("%s: %d paragraphs, %d sections", path, len(doc.Paragraphs), len(doc.Sections))

	report := s.evaluator.Evaluate(doc, s.rules)
	logger.Info("%s: %s", path, report.Summary())

	run := &domain.CheckRun{
		ID:        uuid.NewString(),
		Path:      absPath(path),
		Digest:    src.Digest(),
		StyleName: s.rules.Style().Name,
		CheckedAt: s.now().UTC(),
		Status:    report.OverallStatus(),
		Report:    report,
	}
	result.Run = run

	if opts.Annotate {
		out, err := s.annotate(src, report, path, opts.Suffix)
		if err != nil {
			logger.Warn("%s: %v", path, err)
			result.AnnotateErr = err
		} else {
			run.AnnotatedPath = out
		}
	}

	if opts.Record && s.store != nil {
		if err := s.store.Save(ctx, run); err != nil {
			logger.Warn("record run for %s: %v", path, err)
		}
	}
	return result
}

// annotate marks a copy and saves it next to path. The source handle is
// closed before the copy is written.
func (s *CheckService) annotate(src driven.SourceDocument, report *domain.Report, path, suffix string) (string, error) {
	out, err := AnnotatedPath(path, suffix)
	if err != nil {
		return "", err
	}
	cp, err := s.annotator.Annotate(src, report)
	if err != nil {
		return "", err
	}
	if err := src.Close(); err != nil {
		return "", fmt.Errorf("close source: %w", err)
	}
	if err := cp.Save(out); err != nil {
		return "", err
	}
	logger.Debug("annotated copy written to %s", out)
	return out, nil
}

// CheckAll processes files with at most the configured number of workers.
// Results are in input order.
func (s *CheckService) CheckAll(ctx context.Context, paths []string, opts driving.CheckOptions) []domain.FileResult {
	results := make([]domain.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = s.Check(gctx, path, opts)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Inspect loads and evaluates a file without annotating or recording it.
func (s *CheckService) Inspect(ctx context.Context, path string) (*domain.Document, *domain.Report, error) {
	doc, src, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = src.Close() }()
	return doc, s.evaluator.Evaluate(doc, s.rules), nil
}

// Rules lists every registered rule.
func (s *CheckService) Rules() []domain.RuleInfo {
	return s.rules.Info()
}

// Style returns the active house style.
func (s *CheckService) Style() domain.HouseStyle {
	return s.rules.Style()
}

// AnnotatedPath names the annotated sibling of path: "paper.docx" with
// suffix "_annotated" becomes "paper_annotated.docx".
func AnnotatedPath(path, suffix string) (string, error) {
	if suffix == "" {
		suffix = domain.DefaultSuffix
	}
	if strings.ContainsAny(suffix, `/\`) {
		return "", fmt.Errorf("%w: suffix %q must not contain a path separator", domain.ErrInvalidInput, suffix)
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
