package domain

// RuleScope says whether a rule runs per paragraph or once per document.
type RuleScope string

// Rule scopes.
const (
	ScopeParagraph RuleScope = "paragraph"
	ScopeDocument  RuleScope = "document"
)

// RuleInfo describes a registered rule for listings.
type RuleInfo struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Scope       RuleScope `json:"scope"`
	Enabled     bool      `json:"enabled"`
}
