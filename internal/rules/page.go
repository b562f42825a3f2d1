package rules

import (
	"fmt"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

func buildPageSize(style domain.HouseStyle) (driven.Rule, error) {
	ps := style.Page
	return &documentRule{
		id:          "page-size",
		description: fmt.Sprintf("Pages are %.0f×%.0f mm", ps.WidthMM, ps.HeightMM),
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if len(rc.Sections) == 0 {
				return domain.Error("document has no page setup")
			}
			for i, s := range rc.Sections {
				if !s.HasPageSize() {
					return domain.Error(fmt.Sprintf("section %d: page size not set, expected %.0f×%.0f mm", i+1, ps.WidthMM, ps.HeightMM))
				}
				if !approx(s.PageWidthMM, ps.WidthMM, ps.ToleranceMM) || !approx(s.PageHeightMM, ps.HeightMM, ps.ToleranceMM) {
					return domain.Error(fmt.Sprintf("section %d: page %.1f×%.1f mm, expected %.0f×%.0f mm",
						i+1, s.PageWidthMM, s.PageHeightMM, ps.WidthMM, ps.HeightMM))
				}
			}
			return nil
		},
	}, nil
}

func buildMargins(style domain.HouseStyle) (driven.Rule, error) {
	ps := style.Page
	want := fmt.Sprintf("%.1f/%.1f/%.1f/%.1f cm", ps.MarginTopCM, ps.MarginBottomCM, ps.MarginLeftCM, ps.MarginRightCM)
	return &documentRule{
		id:          "margins",
		description: "Margins top/bottom/left/right are " + want,
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			for i, s := range rc.Sections {
				tol := ps.MarginToleranceCM
				if approx(s.MarginTopCM, ps.MarginTopCM, tol) &&
					approx(s.MarginBottomCM, ps.MarginBottomCM, tol) &&
					approx(s.MarginLeftCM, ps.MarginLeftCM, tol) &&
					approx(s.MarginRightCM, ps.MarginRightCM, tol) {
					continue
				}
				return domain.Error(fmt.Sprintf("section %d: margins top/bottom/left/right %.2f/%.2f/%.2f/%.2f cm, expected %s",
					i+1, s.MarginTopCM, s.MarginBottomCM, s.MarginLeftCM, s.MarginRightCM, want))
			}
			return nil
		},
	}, nil
}

func buildPageCount(style domain.HouseStyle) (driven.Rule, error) {
	limit := style.Page.MaxPages
	return &documentRule{
		id:          "page-count",
		description: fmt.Sprintf("The paper fits in %d pages", limit),
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if limit > 0 && rc.Pages.Count > limit {
				return domain.Error(fmt.Sprintf("estimated %d pages, at most %d allowed", rc.Pages.Count, limit))
			}
			return nil
		},
	}, nil
}

func buildLastPageFill(style domain.HouseStyle) (driven.Rule, error) {
	minParas := style.Page.MinLastPageParagraphs
	return &documentRule{
		id:          "last-page-fill",
		description: fmt.Sprintf("The last page holds at least %d paragraphs", minParas),
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if rc.Pages.Count > 1 && rc.Pages.LastPageParagraphs < minParas {
				return domain.Warn(fmt.Sprintf("last page holds %s, expected at least %d",
					pluralize(rc.Pages.LastPageParagraphs, "paragraph"), minParas))
			}
			return nil
		},
	}, nil
}
