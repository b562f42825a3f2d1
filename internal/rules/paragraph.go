package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

func buildFontFamily(style domain.HouseStyle) (driven.Rule, error) {
	families := style.Fonts.Families
	return &paragraphRule{
		id:          "font-family",
		description: fmt.Sprintf("Text uses %s", strings.Join(families, " or ")),
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if name, bad := firstBadFont(p, families); bad {
				return domain.Error(fmt.Sprintf("font %q, expected %s", name, strings.Join(families, " or ")))
			}
			return nil
		}),
	}, nil
}

func buildFontSize(style domain.HouseStyle) (driven.Rule, error) {
	sizes, tol := style.Fonts.BodySizes, style.Fonts.SizeTolerance
	return &paragraphRule{
		id:          "font-size",
		description: fmt.Sprintf("Body text is set in %s", formatSizes(sizes)),
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if size, bad := firstBadSize(p, sizes, tol); bad {
				return domain.Error(fmt.Sprintf("font size %s, expected %s", formatPoints(size), formatSizes(sizes)))
			}
			return nil
		}, domain.RoleBody, domain.RoleAbstract, domain.RoleAuthors, domain.RoleHeading),
	}, nil
}

func buildCaptionFontSize(style domain.HouseStyle) (driven.Rule, error) {
	want, tol := style.Fonts.CaptionSize, style.Fonts.SizeTolerance
	return &paragraphRule{
		id:          "caption-font-size",
		description: fmt.Sprintf("Captions and the literature list are set in %s", formatPoints(want)),
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if size, bad := firstBadSize(p, []float64{want}, tol); bad {
				return domain.Warn(fmt.Sprintf("font size %s, expected %s", formatPoints(size), formatPoints(want)))
			}
			return nil
		}, domain.RoleCaption, domain.RoleLiteratureHeader, domain.RoleLiteratureItem),
	}, nil
}

func buildBodyAlignment(style domain.HouseStyle) (driven.Rule, error) {
	want := style.Paragraph.BodyAlignment
	return &paragraphRule{
		id:          "body-alignment",
		description: fmt.Sprintf("Body paragraphs are aligned %s", want),
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if p.Alignment != want {
				return domain.Warn(fmt.Sprintf("alignment %s, expected %s", p.Alignment, want))
			}
			return nil
		}, domain.RoleBody),
	}, nil
}

func buildFirstLineIndent(style domain.HouseStyle) (driven.Rule, error) {
	ps := style.Paragraph
	return &paragraphRule{
		id:          "first-line-indent",
		description: fmt.Sprintf("Body paragraphs have a %.2f cm first-line indent", ps.FirstLineIndentCM),
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if p.Indent.FirstLine == 0 {
				return nil
			}
			got := pointsToCM(p.Indent.FirstLine)
			msg := fmt.Sprintf("first-line indent %.2f cm, expected %.2f cm", got, ps.FirstLineIndentCM)
			switch {
			case approx(got, ps.FirstLineIndentCM, ps.IndentToleranceCM):
				return nil
			case approx(got, ps.FirstLineIndentCM, ps.IndentHardToleranceCM):
				return domain.Warn(msg)
			default:
				return domain.Error(msg)
			}
		}, domain.RoleBody),
	}, nil
}

func buildIndentByWhitespace(style domain.HouseStyle) (driven.Rule, error) {
	spaces := strings.Repeat(" ", max(1, style.Text.MinLeadingSpaces))
	return &paragraphRule{
		id:          "indent-by-whitespace",
		description: "Body paragraphs are not indented with tabs or spaces",
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if p.Indent.FirstLine != 0 {
				return nil
			}
			if strings.HasPrefix(p.Text, "\t") || strings.HasPrefix(p.Text, spaces) {
				return domain.Error("first line indented with tabs or spaces instead of a paragraph indent")
			}
			return nil
		}, domain.RoleBody),
	}, nil
}

func buildLineSpacing(style domain.HouseStyle) (driven.Rule, error) {
	ps := style.Paragraph
	return &paragraphRule{
		id:          "line-spacing",
		description: fmt.Sprintf("Line spacing is %.2g", ps.LineSpacing),
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			got, ok := p.LineSpacing.Multiple()
			if !ok {
				return domain.Warn(fmt.Sprintf("line spacing fixed at %s (%s), expected %.2g lines",
					formatPoints(p.LineSpacing.Value), p.LineSpacing.Rule, ps.LineSpacing))
			}
			msg := fmt.Sprintf("line spacing %.2f, expected %.2g", got, ps.LineSpacing)
			switch {
			case approx(got, ps.LineSpacing, ps.LineSpacingSoftTolerance):
				return nil
			case approx(got, ps.LineSpacing, ps.LineSpacingHardTolerance):
				return domain.Warn(msg)
			default:
				return domain.Error(msg)
			}
		}),
	}, nil
}

func buildFigureCaptionDot(_ domain.HouseStyle) (driven.Rule, error) {
	return &paragraphRule{
		id:          "figure-caption-dot",
		description: "Figure captions do not end with a period",
		check: forRoles(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if strings.HasSuffix(strings.TrimSpace(p.Text), ".") {
				return domain.Warn("figure caption ends with a period")
			}
			return nil
		}, domain.RoleCaption),
	}, nil
}

var headingNumber = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s`)

func buildHeadingNumbering(_ domain.HouseStyle) (driven.Rule, error) {
	return &paragraphRule{
		id:          "heading-numbering",
		description: "Heading levels do not skip and numbering depth matches the level",
		check: forRoles(func(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation {
			level := p.OutlineLevel
			prev := rc.PreviousHeadingLevel(p.Index)
			if level > prev+1 {
				return domain.Warn(fmt.Sprintf("heading level %d follows level %d", level, prev))
			}
			m := headingNumber.FindStringSubmatch(strings.TrimSpace(p.Text))
			if m == nil {
				return nil
			}
			if depth := strings.Count(m[1], ".") + 1; depth != level {
				return domain.Warn(fmt.Sprintf("numbering %s has depth %d but heading level is %d", m[1], depth, level))
			}
			return nil
		}, domain.RoleHeading),
	}, nil
}

func buildTabsInText(_ domain.HouseStyle) (driven.Rule, error) {
	return &paragraphRule{
		id:          "tabs-in-text",
		description: "Text contains no tab characters",
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if n := strings.Count(p.Text, "\t"); n > 0 {
				return domain.Warn(fmt.Sprintf("%s in text", pluralize(n, "tab character")))
			}
			return nil
		}),
	}, nil
}

func buildLeadingSpaces(style domain.HouseStyle) (driven.Rule, error) {
	n := max(1, style.Text.MinLeadingSpaces)
	spaces := strings.Repeat(" ", n)
	return &paragraphRule{
		id:          "leading-spaces",
		description: fmt.Sprintf("Paragraphs do not start with %d or more spaces", n),
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if strings.HasPrefix(p.Text, spaces) {
				return domain.Warn("paragraph starts with several spaces")
			}
			return nil
		}),
	}, nil
}

func buildNonbreakingSpace(style domain.HouseStyle) (driven.Rule, error) {
	units := style.Text.NonbreakingUnits
	if len(units) == 0 {
		return &paragraphRule{
			id:          "nonbreaking-space",
			description: "Numbers and units are joined by a no-break space",
			check:       func(domain.Paragraph, *domain.RuleContext) *domain.Violation { return nil },
		}, nil
	}
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = regexp.QuoteMeta(u)
	}
	re, err := regexp.Compile(`(?i)(\d +(?:` + strings.Join(quoted, "|") + `))(?:[^\p{L}\p{N}]|$)`)
	if err != nil {
		return nil, fmt.Errorf("nonbreaking units: %w", err)
	}
	return &paragraphRule{
		id:          "nonbreaking-space",
		description: "Numbers and units are joined by a no-break space",
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if m := re.FindStringSubmatch(p.Text); m != nil {
				return domain.Warn(fmt.Sprintf("ordinary space between number and unit in %q, use a no-break space", m[1]))
			}
			return nil
		}),
	}, nil
}

var hyphenDash = regexp.MustCompile(`\s-\s`)

func buildHyphenDash(_ domain.HouseStyle) (driven.Rule, error) {
	return &paragraphRule{
		id:          "hyphen-dash",
		description: "A spaced hyphen is not used as a dash",
		check: nonEmpty(func(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
			if hyphenDash.MatchString(p.Text) {
				return domain.Warn("hyphen used as a dash, use an en or em dash")
			}
			return nil
		}),
	}, nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
