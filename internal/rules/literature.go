package rules

import (
	"fmt"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

func buildLiteratureHeader(style domain.HouseStyle) (driven.Rule, error) {
	heading := style.Structure.LiteratureHeading
	fonts := style.Fonts
	return &documentRule{
		id:          "literature-header",
		description: fmt.Sprintf("The literature list opens with %q in bold %s", heading, formatPoints(fonts.CaptionSize)),
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			p, ok := doc.Paragraph(rc.Literature)
			if !ok {
				return domain.Error(fmt.Sprintf("heading %q not found", heading))
			}
			_, badSize := firstBadSize(p, []float64{fonts.CaptionSize}, fonts.SizeTolerance)
			if badSize || !p.Bold {
				return domain.Error(fmt.Sprintf("heading %q must be bold %s", heading, formatPoints(fonts.CaptionSize))).At(p.Index)
			}
			return nil
		},
	}, nil
}

func buildLiteratureItems(style domain.HouseStyle) (driven.Rule, error) {
	fonts := style.Fonts
	return &documentRule{
		id:          "literature-items",
		description: fmt.Sprintf("Literature items are justified in %s", formatPoints(fonts.CaptionSize)),
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if rc.Literature < 0 {
				return nil
			}
			for _, p := range doc.Paragraphs[rc.Literature+1:] {
				if rc.Role(p.Index) != domain.RoleLiteratureItem {
					continue
				}
				_, badSize := firstBadSize(p, []float64{fonts.CaptionSize}, fonts.SizeTolerance)
				aligned := p.Alignment == domain.AlignmentJustify || p.Alignment == domain.AlignmentUnset
				if badSize || !aligned {
					return domain.Warn(fmt.Sprintf("literature items must be justified %s", formatPoints(fonts.CaptionSize))).At(p.Index)
				}
			}
			return nil
		},
	}, nil
}
