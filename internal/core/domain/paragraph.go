package domain

import "strings"

// Alignment is the resolved horizontal alignment of a paragraph.
type Alignment string

// Paragraph alignments. AlignmentUnset means no layer specified one.
const (
	AlignmentUnset   Alignment = ""
	AlignmentLeft    Alignment = "left"
	AlignmentCenter  Alignment = "center"
	AlignmentRight   Alignment = "right"
	AlignmentJustify Alignment = "justify"
)

// IsValid returns true if the alignment is recognised.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignmentUnset, AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentJustify:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a Alignment) String() string {
	if a == AlignmentUnset {
		return "unset"
	}
	return string(a)
}

// LineSpacingRule says how LineSpacing.Value is measured.
type LineSpacingRule string

// Line spacing rules as written by word processors.
const (
	// LineSpacingUnset means no layer set spacing; renderers use single spacing.
	LineSpacingUnset LineSpacingRule = ""

	// LineSpacingAuto measures Value as a multiple of single spacing.
	LineSpacingAuto LineSpacingRule = "auto"

	// LineSpacingExact measures Value in points.
	LineSpacingExact LineSpacingRule = "exact"

	// LineSpacingAtLeast measures Value in points as a minimum.
	LineSpacingAtLeast LineSpacingRule = "atLeast"
)

// LineSpacing is either a multiple of single spacing or a fixed height in points.
type LineSpacing struct {
	Rule  LineSpacingRule `json:"rule,omitempty"`
	Value float64         `json:"value,omitempty"`
}

// Multiple returns the spacing as a multiple of single spacing.
// Unset spacing counts as single. The second value is false for fixed spacing.
func (s LineSpacing) Multiple() (float64, bool) {
	switch s.Rule {
	case LineSpacingUnset:
		return 1, true
	case LineSpacingAuto:
		return s.Value, true
	default:
		return 0, false
	}
}

// Indentation holds paragraph indents in points.
// A negative FirstLine is a hanging indent.
type Indentation struct {
	FirstLine float64 `json:"first_line"`
	Left      float64 `json:"left"`
	Right     float64 `json:"right"`
}

// Run is the resolved character formatting of one text-bearing run.
type Run struct {
	Text     string  `json:"text"`
	FontName string  `json:"font_name,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	Italic   bool    `json:"italic,omitempty"`
}

// Paragraph is a read-only snapshot of one body paragraph with its
// effective (resolved) formatting.
type Paragraph struct {
	// Index is the 0-based position in document order.
	Index int `json:"index"`

	// Text is the full paragraph text. Tabs are "\t", breaks are "\n".
	Text string `json:"text"`

	// TextPreview is the trimmed, truncated text used as report context.
	TextPreview string `json:"text_preview"`

	// StyleID and StyleName identify the named paragraph style, if any.
	StyleID   string `json:"style_id,omitempty"`
	StyleName string `json:"style_name,omitempty"`

	Alignment Alignment `json:"alignment"`

	// FontName, FontSize, Bold and Italic come from the first text-bearing run,
	// or from the paragraph layer when there is none. FontSize is 0 when unresolved.
	FontName string  `json:"font_name,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Bold     bool    `json:"bold"`
	Italic   bool    `json:"italic"`

	LineSpacing LineSpacing `json:"line_spacing"`
	Indent      Indentation `json:"indent"`
	SpaceBefore float64     `json:"space_before"`
	SpaceAfter  float64     `json:"space_after"`

	// OutlineLevel is 1..9 for headings and 0 for ordinary paragraphs.
	OutlineLevel int `json:"outline_level,omitempty"`

	// Runs lists the text-bearing runs in order.
	Runs []Run `json:"runs,omitempty"`
}

// IsEmpty reports whether the paragraph has no visible text.
// No-break spaces count as whitespace.
func (p Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text) == ""
}

// Preview returns the first n runes of the trimmed text.
func Preview(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
