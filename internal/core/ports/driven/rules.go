package driven

import "github.com/custodia-labs/docstyle/internal/core/domain"

// Rule is a named, versionless check.
type Rule interface {
	// ID returns the stable kebab-case identifier.
	ID() string

	// Description returns the human-readable rule statement.
	Description() string
}

// ParagraphRule runs once per paragraph.
// It returns nil when the paragraph passes or the rule does not apply.
type ParagraphRule interface {
	Rule
	CheckParagraph(p domain.Paragraph, rc *domain.RuleContext) *domain.Violation
}

// DocumentRule runs once per document.
// It returns nil when the document passes.
type DocumentRule interface {
	Rule
	CheckDocument(doc *domain.Document, rc *domain.RuleContext) *domain.Violation
}

// RuleSet is the ordered, read-only collection of rules.
// It is safe to share between goroutines.
type RuleSet interface {
	// Prepare computes the whole-document context once per document.
	Prepare(doc *domain.Document) *domain.RuleContext

	// ParagraphRules returns paragraph rules in report order.
	ParagraphRules() []ParagraphRule

	// DocumentRules returns document rules in report order.
	DocumentRules() []DocumentRule

	// PreviewLength is the number of runes of text used as finding context.
	PreviewLength() int

	// Style returns the house style the rules were built for.
	Style() domain.HouseStyle

	// Info describes every registered rule, disabled ones included.
	Info() []domain.RuleInfo
}

// RuleSetBuilder builds the rule set for a house style.
type RuleSetBuilder func(style domain.HouseStyle) (RuleSet, error)
