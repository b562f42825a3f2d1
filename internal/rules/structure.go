package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

var capitalisedName = regexp.MustCompile(`\p{Lu}\p{Ll}+`)

func buildAuthorsLine(style domain.HouseStyle) (driven.Rule, error) {
	fonts := style.Fonts
	return &documentRule{
		id:          "authors-line",
		description: "The first line lists the authors, right-aligned in bold italic body size",
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			p, ok := doc.Paragraph(rc.Authors)
			if !ok {
				return domain.Warn("authors line not found")
			}
			var problems []string
			if p.Alignment != domain.AlignmentRight {
				problems = append(problems, "not right-aligned")
			}
			if _, bad := firstBadSize(p, fonts.BodySizes, fonts.SizeTolerance); bad {
				problems = append(problems, "not body size")
			}
			if !p.Bold || !p.Italic {
				problems = append(problems, "not bold italic")
			}
			if !capitalisedName.MatchString(p.Text) {
				problems = append(problems, "no capitalised surname")
			}
			if len(problems) > 0 {
				return domain.Warn("authors line " + strings.Join(problems, ", ")).At(p.Index)
			}
			return nil
		},
	}, nil
}

func buildTitleFormat(style domain.HouseStyle) (driven.Rule, error) {
	fonts := style.Fonts
	return &documentRule{
		id:          "title-format",
		description: fmt.Sprintf("The title is centred, %s, neither bold nor italic", formatPoints(fonts.TitleSize)),
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			p, ok := doc.Paragraph(rc.Title)
			if !ok {
				return domain.Error("title not found")
			}
			var problems []string
			if p.Alignment != domain.AlignmentCenter {
				problems = append(problems, "not centred")
			}
			if size, bad := firstBadSize(p, []float64{fonts.TitleSize}, fonts.SizeTolerance); bad {
				problems = append(problems, fmt.Sprintf("size %s instead of %s", formatPoints(size), formatPoints(fonts.TitleSize)))
			}
			if p.Bold || p.Italic {
				problems = append(problems, "bold or italic")
			}
			if len(problems) > 0 {
				return domain.Error("title " + strings.Join(problems, ", ")).At(p.Index)
			}
			return nil
		},
	}, nil
}

func buildTitleLayout(_ domain.HouseStyle) (driven.Rule, error) {
	return &documentRule{
		id:          "title-layout",
		description: "A blank line separates the authors from the title, which has no manual hyphenation",
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			p, ok := doc.Paragraph(rc.Title)
			if !ok {
				return nil
			}
			var problems []string
			if !rc.BlankAfterAuthors {
				problems = append(problems, "no blank line after the authors line")
			}
			if strings.Contains(p.Text, "-\n") || strings.ContainsRune(p.Text, '\u00ad') {
				problems = append(problems, "manual hyphenation in the title")
			}
			if len(problems) > 0 {
				return domain.Warn(strings.Join(problems, ", "))
			}
			return nil
		},
	}, nil
}

func buildTitleSpacing(_ domain.HouseStyle) (driven.Rule, error) {
	return &documentRule{
		id:          "title-spacing",
		description: "A blank line follows the title",
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if rc.Title >= 0 && !rc.BlankAfterTitle {
				return domain.Warn("no blank line after the title")
			}
			return nil
		},
	}, nil
}

func buildAbstractPresent(style domain.HouseStyle) (driven.Rule, error) {
	st := style.Structure
	return &documentRule{
		id:          "abstract-present",
		description: fmt.Sprintf("The paper has an abstract (%s)", strings.Join(st.AbstractKeywords, ", ")),
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if st.RequireAbstract && rc.Abstract < 0 {
				return domain.Error("abstract not found")
			}
			return nil
		},
	}, nil
}

func buildStructureOrder(_ domain.HouseStyle) (driven.Rule, error) {
	return &documentRule{
		id:          "structure-order",
		description: "Authors, title, abstract and literature appear in that order",
		check: func(_ *domain.Document, rc *domain.RuleContext) *domain.Violation {
			if rc.Abstract >= 0 {
				if rc.Title >= 0 && rc.Abstract < rc.Title {
					return domain.Error("abstract precedes the title").At(rc.Abstract)
				}
				if rc.Literature >= 0 && rc.Abstract > rc.Literature {
					return domain.Error("abstract follows the literature list").At(rc.Abstract)
				}
			}
			if rc.Literature >= 0 && rc.Title >= 0 && rc.Literature < rc.Title {
				return domain.Error("literature list precedes the title").At(rc.Literature)
			}
			return nil
		},
	}, nil
}

func buildBodyStart(style domain.HouseStyle) (driven.Rule, error) {
	fonts := style.Fonts
	align := style.Paragraph.BodyAlignment
	return &documentRule{
		id:          "body-start",
		description: "The body opens with a justified paragraph in the body font",
		check: func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
			p, ok := doc.Paragraph(rc.BodyStart)
			if !ok {
				return domain.Error("start of the body text not found")
			}
			var problems []string
			if p.Alignment != align {
				problems = append(problems, "not "+string(align))
			}
			if _, bad := firstBadSize(p, fonts.BodySizes, fonts.SizeTolerance); bad {
				problems = append(problems, "not body size")
			}
			if _, bad := firstBadFont(p, fonts.Families); bad {
				problems = append(problems, "not the body font")
			}
			if len(problems) > 0 {
				return domain.Error("first body paragraph " + strings.Join(problems, ", ")).At(p.Index)
			}
			return nil
		},
	}, nil
}
