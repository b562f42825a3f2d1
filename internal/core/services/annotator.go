package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// BannerTitle is the first line of the banner paragraph.
const BannerTitle = "Style check: document findings"

// Annotator marks a copy of a document with the findings of a report.
type Annotator struct {
	errorColor string
	warnColor  string
}

// NewAnnotator creates an annotator. Invalid colours fall back to the defaults.
func NewAnnotator(errorColor, warnColor string) *Annotator {
	if !domain.IsHexColor(errorColor) {
		errorColor = domain.DefaultErrorColor
	}
	if !domain.IsHexColor(warnColor) {
		warnColor = domain.DefaultWarnColor
	}
	return &Annotator{
		errorColor: strings.ToUpper(errorColor),
		warnColor:  strings.ToUpper(warnColor),
	}
}

// Annotate returns a fresh copy of src with every paragraph named by a
// WARN or ERROR finding coloured, and the document-level findings listed
// in one banner paragraph before the first content paragraph.
// The source is never modified. Annotating the same source with the same
// report twice gives identical copies.
func (a *Annotator) Annotate(src driven.SourceDocument, report *domain.Report) (driven.DocumentCopy, error) {
	cp, err := src.Copy()
	if err != nil {
		return nil, fmt.Errorf("%w: copy %s: %v", domain.ErrAnnotationWrite, src.Path(), err)
	}
	if n := cp.RemoveBanners(); n > 0 {
		logger.Debug("removed %d stale banner paragraph(s)", n)
	}

	worst := make(map[int]domain.Severity)
	var banner []string
	for _, f := range report.Problems() {
		if f.ParagraphIndex == nil {
			banner = append(banner, fmt.Sprintf("[%s] %s: %s", f.Severity, f.RuleID, f.Message))
			continue
		}
		worst[*f.ParagraphIndex] = worst[*f.ParagraphIndex].Max(f.Severity)
	}

	indices := make([]int, 0, len(worst))
	for i := range worst {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	for _, i := range indices {
		if i < 0 || i >= cp.ParagraphCount() {
			logger.Warn("finding refers to paragraph %d, document has %d", i, cp.ParagraphCount())
			continue
		}
		if err := cp.ColorParagraph(i, a.colorFor(worst[i])); err != nil {
			return nil, fmt.Errorf("%w: mark paragraph %d: %v", domain.ErrAnnotationWrite, i, err)
		}
	}

	if len(banner) > 0 {
		lines := append([]string{BannerTitle}, banner...)
		if err := cp.InsertBanner(firstContent(cp), lines, a.errorColor); err != nil {
			return nil, fmt.Errorf("%w: insert banner: %v", domain.ErrAnnotationWrite, err)
		}
	}
	return cp, nil
}

func (a *Annotator) colorFor(s domain.Severity) string {
	if s == domain.SeverityError {
		return a.errorColor
	}
	return a.warnColor
}

// firstContent returns the first paragraph with visible text, or 0.
func firstContent(cp driven.DocumentCopy) int {
	for i := 0; i < cp.ParagraphCount(); i++ {
		text, err := cp.ParagraphText(i)
		if err == nil && strings.TrimSpace(text) != "" {
			return i
		}
	}
	return 0
}
