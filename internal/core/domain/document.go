package domain

// Section holds the page geometry of one document section.
// Page size is in millimetres, margins in centimetres.
type Section struct {
	PageWidthMM    float64 `json:"page_width_mm"`
	PageHeightMM   float64 `json:"page_height_mm"`
	MarginTopCM    float64 `json:"margin_top_cm"`
	MarginBottomCM float64 `json:"margin_bottom_cm"`
	MarginLeftCM   float64 `json:"margin_left_cm"`
	MarginRightCM  float64 `json:"margin_right_cm"`
}

// HasPageSize reports whether the section declares a page size.
func (s Section) HasPageSize() bool {
	return s.PageWidthMM > 0 && s.PageHeightMM > 0
}

// Document is the read-only view of a loaded file that rules inspect.
type Document struct {
	// Path is the file the document was loaded from.
	Path string `json:"path"`

	// Paragraphs are the top-level body paragraphs in document order.
	// Paragraph i has Index i.
	Paragraphs []Paragraph `json:"paragraphs"`

	// Sections lists page geometry in document order.
	// The final entry is the body's own section properties.
	Sections []Section `json:"sections"`
}

// Paragraph returns the paragraph at index i.
func (d *Document) Paragraph(i int) (Paragraph, bool) {
	if d == nil || i < 0 || i >= len(d.Paragraphs) {
		return Paragraph{}, false
	}
	return d.Paragraphs[i], true
}

// MainSection returns the first section. Most documents have exactly one.
func (d *Document) MainSection() (Section, bool) {
	if d == nil || len(d.Sections) == 0 {
		return Section{}, false
	}
	return d.Sections[0], true
}
