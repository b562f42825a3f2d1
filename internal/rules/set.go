package rules

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Set is the ordered, read-only rule set for one house style.
type Set struct {
	style     domain.HouseStyle
	context   contextBuilder
	paragraph []driven.ParagraphRule
	document  []driven.DocumentRule
	info      []domain.RuleInfo
}

var _ driven.RuleSet = (*Set)(nil)

// New builds the default rule set for style.
func New(style domain.HouseStyle) (*Set, error) {
	r := NewRegistry()
	RegisterDefaults(r)
	return FromRegistry(r, style)
}

// FromRegistry builds every registered rule for style and keeps the
// ones not listed in style.DisabledRules.
func FromRegistry(r *Registry, style domain.HouseStyle) (*Set, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	for _, id := range style.DisabledRules {
		if !r.Has(id) {
			return nil, fmt.Errorf("disabled_rules: %w: %s", domain.ErrUnknownRule, id)
		}
	}

	caption, err := regexp.Compile(style.Structure.CaptionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: caption_pattern: %v", domain.ErrInvalidInput, err)
	}

	s := &Set{
		style:   style,
		context: contextBuilder{style: style, caption: caption},
	}
	for _, id := range r.Names() {
		rule, err := r.Build(id, style)
		if err != nil {
			return nil, fmt.Errorf("build rule %s: %w", id, err)
		}
		enabled := !style.RuleDisabled(id)

		var scope domain.RuleScope
		switch typed := rule.(type) {
		case driven.ParagraphRule:
			scope = domain.ScopeParagraph
			if enabled {
				s.paragraph = append(s.paragraph, typed)
			}
		case driven.DocumentRule:
			scope = domain.ScopeDocument
			if enabled {
				s.document = append(s.document, typed)
			}
		default:
			return nil, fmt.Errorf("rule %s is neither a paragraph nor a document rule", id)
		}
		s.info = append(s.info, domain.RuleInfo{
			ID:          rule.ID(),
			Description: rule.Description(),
			Scope:       scope,
			Enabled:     enabled,
		})
	}
	return s, nil
}

// Prepare computes the whole-document context for doc.
func (s *Set) Prepare(doc *domain.Document) *domain.RuleContext {
	return s.context.build(doc)
}

// ParagraphRules returns the enabled paragraph rules in report order.
func (s *Set) ParagraphRules() []driven.ParagraphRule {
	return s.paragraph
}

// DocumentRules returns the enabled document rules in report order.
func (s *Set) DocumentRules() []driven.DocumentRule {
	return s.document
}

// PreviewLength returns the finding context length.
func (s *Set) PreviewLength() int {
	return s.style.PreviewLength
}

// Style returns the house style the set was built for.
func (s *Set) Style() domain.HouseStyle {
	return s.style
}

// Info describes every registered rule, disabled ones included.
func (s *Set) Info() []domain.RuleInfo {
	out := make([]domain.RuleInfo, len(s.info))
	copy(out, s.info)
	return out
}

// Lookup returns the description of one rule.
func (s *Set) Lookup(id string) (domain.RuleInfo, bool) {
	for _, info := range s.info {
		if info.ID == id {
			return info, true
		}
	}
	return domain.RuleInfo{}, false
}
