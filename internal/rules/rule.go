package rules

import (
	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

type paragraphCheck func(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation

type documentCheck func(doc *domain.Document, rc *domain.RuleContext) *domain.Violation

type paragraphRule struct {
	id          string
	description string
	check       paragraphCheck
}

var _ driven.ParagraphRule = (*paragraphRule)(nil)

func (r *paragraphRule) ID() string          { return r.id }
func (r *paragraphRule) Description() string { return r.description }

func (r *paragraphRule) CheckParagraph(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation {
	return r.check(p, rc)
}

type documentRule struct {
	id          string
	description string
	check       documentCheck
}

var _ driven.DocumentRule = (*documentRule)(nil)

func (r *documentRule) ID() string          { return r.id }
func (r *documentRule) Description() string { return r.description }

func (r *documentRule) CheckDocument(doc *domain.Document, rc *domain.RuleContext) *domain.Violation {
	return r.check(doc, rc)
}

// forRoles restricts a paragraph check to paragraphs with one of the roles.
func forRoles(check paragraphCheck, roles ...domain.Role) paragraphCheck {
	return func(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation {
		role := rc.Role(p.Index)
		for _, r := range roles {
			if r == role {
				return check(p, rc)
			}
		}
		return nil
	}
}

// nonEmpty skips paragraphs without visible text.
func nonEmpty(check paragraphCheck) paragraphCheck {
	return func(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation {
		if rc.Role(p.Index) == domain.RoleEmpty {
			return nil
		}
		return check(p, rc)
	}
}
