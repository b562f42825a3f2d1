package domain

// Role classifies a paragraph by its place in the manuscript.
type Role string

// Paragraph roles assigned by the context pre-pass.
const (
	RoleEmpty            Role = "empty"
	RoleAuthors          Role = "authors"
	RoleTitle            Role = "title"
	RoleAbstract         Role = "abstract"
	RoleHeading          Role = "heading"
	RoleCaption          Role = "caption"
	RoleLiteratureHeader Role = "literature-header"
	RoleLiteratureItem   Role = "literature-item"
	RoleBody             Role = "body"
)

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// PageEstimate approximates pagination from text length.
type PageEstimate struct {
	Count              int `json:"count"`
	LastPageParagraphs int `json:"last_page_paragraphs"`
}

// RuleContext is the whole-document projection every rule receives.
// It is computed once before evaluation and never changes afterwards.
// Indices are -1 when the element was not found.
type RuleContext struct {
	ParagraphCount int
	FirstContent   int
	LastContent    int

	Authors     int
	Title       int
	Abstract    int
	AbstractEnd int
	BodyStart   int
	Literature  int

	// Roles has one entry per paragraph.
	Roles []Role

	BlankAfterAuthors bool
	BlankAfterTitle   bool

	HeadingCount int

	// PrevHeadingLevel[i] is the outline level of the nearest heading
	// before paragraph i, or 0 when there is none.
	PrevHeadingLevel []int

	Pages    PageEstimate
	Sections []Section
}

// Role returns the role of paragraph i, or RoleEmpty when i is out of range.
func (c *RuleContext) Role(i int) Role {
	if c == nil || i < 0 || i >= len(c.Roles) {
		return RoleEmpty
	}
	return c.Roles[i]
}

// PreviousHeadingLevel returns the level of the heading before paragraph i.
func (c *RuleContext) PreviousHeadingLevel(i int) int {
	if c == nil || i < 0 || i >= len(c.PrevHeadingLevel) {
		return 0
	}
	return c.PrevHeadingLevel[i]
}

// Has reports whether idx refers to a found element.
func Has(idx int) bool {
	return idx >= 0
}
