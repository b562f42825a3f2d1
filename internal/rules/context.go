package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// contextBuilder computes the RuleContext in a single pass over the paragraphs.
type contextBuilder struct {
	style   domain.HouseStyle
	caption *regexp.Regexp
}

func (b contextBuilder) build(doc *domain.Document) *domain.RuleContext {
	paras := doc.Paragraphs
	n := len(paras)
	rc := &domain.RuleContext{
		ParagraphCount:   n,
		FirstContent:     -1,
		LastContent:      -1,
		Authors:          -1,
		Title:            -1,
		Abstract:         -1,
		AbstractEnd:      -1,
		BodyStart:        -1,
		Literature:       -1,
		Roles:            make([]domain.Role, n),
		PrevHeadingLevel: make([]int, n),
		Sections:         append([]domain.Section(nil), doc.Sections...),
	}

	empty := make([]bool, n)
	for i, p := range paras {
		empty[i] = p.IsEmpty()
		if !empty[i] {
			if rc.FirstContent < 0 {
				rc.FirstContent = i
			}
			rc.LastContent = i
		}
	}

	nextContent := func(from int) int {
		for i := from; i < n; i++ {
			if !empty[i] {
				return i
			}
		}
		return -1
	}

	// Front matter: authors line, then the title.
	rc.Authors = rc.FirstContent
	if rc.Authors >= 0 {
		rc.Title = nextContent(rc.Authors + 1)
	}
	if rc.Title >= 0 {
		for i := rc.Authors + 1; i < rc.Title; i++ {
			if empty[i] {
				rc.BlankAfterAuthors = true
				break
			}
		}
		rc.BlankAfterTitle = rc.Title+1 < n && empty[rc.Title+1]
	}

	for i, p := range paras {
		if !empty[i] && b.isLiteratureHeading(p.Text) {
			rc.Literature = i
			break
		}
	}

	for i, p := range paras {
		if empty[i] || i == rc.Authors || i == rc.Title || i == rc.Literature {
			continue
		}
		if keyword, ok := b.abstractKeyword(p.Text); ok {
			rc.Abstract = i
			rc.AbstractEnd = i
			if isBareHeading(p.Text, keyword) {
				if next := nextContent(i + 1); next >= 0 && next != rc.Literature {
					rc.AbstractEnd = next
				}
			}
			break
		}
	}

	level := 0
	for i, p := range paras {
		rc.PrevHeadingLevel[i] = level
		rc.Roles[i] = b.role(i, p, empty[i], rc)
		if rc.Roles[i] == domain.RoleHeading {
			rc.HeadingCount++
			level = p.OutlineLevel
		}
	}

	if rc.Title >= 0 {
		for i := rc.Title + 1; i < n; i++ {
			if rc.Roles[i] == domain.RoleBody {
				rc.BodyStart = i
				break
			}
		}
	}

	rc.Pages = b.estimatePages(paras)
	return rc
}

func (b contextBuilder) role(i int, p domain.Paragraph, empty bool, rc *domain.RuleContext) domain.Role {
	switch {
	case empty:
		return domain.RoleEmpty
	case i == rc.Authors:
		return domain.RoleAuthors
	case i == rc.Title:
		return domain.RoleTitle
	case i == rc.Literature:
		return domain.RoleLiteratureHeader
	case rc.Literature >= 0 && i > rc.Literature:
		return domain.RoleLiteratureItem
	case rc.Abstract >= 0 && i >= rc.Abstract && i <= rc.AbstractEnd:
		return domain.RoleAbstract
	case b.caption != nil && b.caption.MatchString(strings.TrimSpace(p.Text)):
		return domain.RoleCaption
	case p.OutlineLevel > 0:
		return domain.RoleHeading
	default:
		return domain.RoleBody
	}
}

func (b contextBuilder) isLiteratureHeading(text string) bool {
	heading := b.style.Structure.LiteratureHeading
	if heading == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), heading)
}

// abstractKeyword returns the keyword the paragraph opens with.
func (b contextBuilder) abstractKeyword(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range b.style.Structure.AbstractKeywords {
		if kw != "" && strings.HasPrefix(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

// isBareHeading reports whether the paragraph is only the keyword,
// optionally followed by a colon or period.
func isBareHeading(text, keyword string) bool {
	t := strings.TrimRight(strings.TrimSpace(text), ":.")
	return strings.EqualFold(strings.TrimSpace(t), keyword)
}

// estimatePages counts wrapped lines of non-empty paragraphs and the
// paragraphs that reach into the last page.
func (b contextBuilder) estimatePages(paras []domain.Paragraph) domain.PageEstimate {
	perLine := b.style.Page.CharsPerLine
	perPage := b.style.Page.LinesPerPage

	lines := make([]int, 0, len(paras))
	total := 0
	for _, p := range paras {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		l := max(1, ceilDiv(utf8.RuneCountInString(text), perLine))
		lines = append(lines, l)
		total += l
	}

	est := domain.PageEstimate{Count: max(1, ceilDiv(total, perPage))}
	threshold := (est.Count - 1) * perPage
	acc := 0
	for _, l := range lines {
		acc += l
		if acc > threshold {
			est.LastPageParagraphs++
		}
	}
	return est
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
