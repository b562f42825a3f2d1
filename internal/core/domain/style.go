package domain

import (
	"fmt"
	"regexp"
)

// HouseStyle holds the expectations the rule set checks against.
// Profiles loaded from disk are overlaid on DefaultHouseStyle.
type HouseStyle struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	Fonts     FontStyle      `toml:"fonts" yaml:"fonts" json:"fonts"`
	Paragraph ParagraphStyle `toml:"paragraph" yaml:"paragraph" json:"paragraph"`
	Page      PageStyle      `toml:"page" yaml:"page" json:"page"`
	Structure StructureStyle `toml:"structure" yaml:"structure" json:"structure"`
	Text      TextStyle      `toml:"text" yaml:"text" json:"text"`

	// PreviewLength bounds the paragraph text shown in reports.
	PreviewLength int `toml:"preview_length" yaml:"preview_length" json:"preview_length"`

	// DisabledRules lists rule ids left out of the rule set.
	DisabledRules []string `toml:"disabled_rules" yaml:"disabled_rules" json:"disabled_rules"`
}

// FontStyle covers typeface and sizes, in points.
type FontStyle struct {
	// Families are matched case-insensitively as substrings of the run font.
	Families      []string  `toml:"families" yaml:"families" json:"families"`
	BodySizes     []float64 `toml:"body_sizes" yaml:"body_sizes" json:"body_sizes"`
	SizeTolerance float64   `toml:"size_tolerance" yaml:"size_tolerance" json:"size_tolerance"`
	CaptionSize   float64   `toml:"caption_size" yaml:"caption_size" json:"caption_size"`
	TitleSize     float64   `toml:"title_size" yaml:"title_size" json:"title_size"`
}

// ParagraphStyle covers alignment, indentation and spacing.
type ParagraphStyle struct {
	BodyAlignment Alignment `toml:"body_alignment" yaml:"body_alignment" json:"body_alignment"`

	FirstLineIndentCM     float64 `toml:"first_line_indent_cm" yaml:"first_line_indent_cm" json:"first_line_indent_cm"`
	IndentToleranceCM     float64 `toml:"indent_tolerance_cm" yaml:"indent_tolerance_cm" json:"indent_tolerance_cm"`
	IndentHardToleranceCM float64 `toml:"indent_hard_tolerance_cm" yaml:"indent_hard_tolerance_cm" json:"indent_hard_tolerance_cm"`

	// LineSpacing is a multiple of single spacing.
	LineSpacing              float64 `toml:"line_spacing" yaml:"line_spacing" json:"line_spacing"`
	LineSpacingSoftTolerance float64 `toml:"line_spacing_soft_tolerance" yaml:"line_spacing_soft_tolerance" json:"line_spacing_soft_tolerance"`
	LineSpacingHardTolerance float64 `toml:"line_spacing_hard_tolerance" yaml:"line_spacing_hard_tolerance" json:"line_spacing_hard_tolerance"`
}

// PageStyle covers page setup and the length estimate.
type PageStyle struct {
	WidthMM     float64 `toml:"width_mm" yaml:"width_mm" json:"width_mm"`
	HeightMM    float64 `toml:"height_mm" yaml:"height_mm" json:"height_mm"`
	ToleranceMM float64 `toml:"tolerance_mm" yaml:"tolerance_mm" json:"tolerance_mm"`

	MarginTopCM       float64 `toml:"margin_top_cm" yaml:"margin_top_cm" json:"margin_top_cm"`
	MarginBottomCM    float64 `toml:"margin_bottom_cm" yaml:"margin_bottom_cm" json:"margin_bottom_cm"`
	MarginLeftCM      float64 `toml:"margin_left_cm" yaml:"margin_left_cm" json:"margin_left_cm"`
	MarginRightCM     float64 `toml:"margin_right_cm" yaml:"margin_right_cm" json:"margin_right_cm"`
	MarginToleranceCM float64 `toml:"margin_tolerance_cm" yaml:"margin_tolerance_cm" json:"margin_tolerance_cm"`

	MaxPages              int `toml:"max_pages" yaml:"max_pages" json:"max_pages"`
	LinesPerPage          int `toml:"lines_per_page" yaml:"lines_per_page" json:"lines_per_page"`
	CharsPerLine          int `toml:"chars_per_line" yaml:"chars_per_line" json:"chars_per_line"`
	MinLastPageParagraphs int `toml:"min_last_page_paragraphs" yaml:"min_last_page_paragraphs" json:"min_last_page_paragraphs"`
}

// StructureStyle covers the manuscript skeleton.
type StructureStyle struct {
	RequireAbstract   bool     `toml:"require_abstract" yaml:"require_abstract" json:"require_abstract"`
	AbstractKeywords  []string `toml:"abstract_keywords" yaml:"abstract_keywords" json:"abstract_keywords"`
	LiteratureHeading string   `toml:"literature_heading" yaml:"literature_heading" json:"literature_heading"`

	// CaptionPattern is a regular expression matched against trimmed text.
	CaptionPattern string `toml:"caption_pattern" yaml:"caption_pattern" json:"caption_pattern"`
}

// TextStyle covers typographic checks on paragraph text.
type TextStyle struct {
	NonbreakingUnits []string `toml:"nonbreaking_units" yaml:"nonbreaking_units" json:"nonbreaking_units"`
	MinLeadingSpaces int      `toml:"min_leading_spaces" yaml:"min_leading_spaces" json:"min_leading_spaces"`
}

// DefaultStyleName names the built-in profile.
const DefaultStyleName = "conference-a5"

// DefaultHouseStyle returns the built-in A5 conference-paper profile.
func DefaultHouseStyle() HouseStyle {
	return HouseStyle{
		Name: DefaultStyleName,
		Fonts: FontStyle{
			Families:      []string{"Times New Roman"},
			BodySizes:     []float64{10},
			SizeTolerance: 0.5,
			CaptionSize:   9,
			TitleSize:     13,
		},
		Paragraph: ParagraphStyle{
			BodyAlignment:            AlignmentJustify,
			FirstLineIndentCM:        0.5,
			IndentToleranceCM:        0.05,
			IndentHardToleranceCM:    0.2,
			LineSpacing:              1.0,
			LineSpacingSoftTolerance: 0.05,
			LineSpacingHardTolerance: 0.5,
		},
		Page: PageStyle{
			WidthMM:               148,
			HeightMM:              210,
			ToleranceMM:           1,
			MarginTopCM:           1.6,
			MarginBottomCM:        1.4,
			MarginLeftCM:          1.5,
			MarginRightCM:         1.5,
			MarginToleranceCM:     0.2,
			MaxPages:              5,
			LinesPerPage:          35,
			CharsPerLine:          70,
			MinLastPageParagraphs: 3,
		},
		Structure: StructureStyle{
			RequireAbstract:   true,
			AbstractKeywords:  []string{"Аннотация", "Abstract"},
			LiteratureHeading: "Литература",
			CaptionPattern:    `(?i)^(рис\.|рисунок)\s`,
		},
		Text: TextStyle{
			NonbreakingUnits: []string{"кг", "г", "мм", "см", "м", "км", "№", "§"},
			MinLeadingSpaces: 3,
		},
		PreviewLength: 80,
	}
}

// Validate checks that the profile can drive the rule set.
func (s HouseStyle) Validate() error {
	switch {
	case len(s.Fonts.Families) == 0:
		return fmt.Errorf("%w: fonts.families must not be empty", ErrInvalidInput)
	case len(s.Fonts.BodySizes) == 0:
		return fmt.Errorf("%w: fonts.body_sizes must not be empty", ErrInvalidInput)
	case s.Fonts.SizeTolerance < 0:
		return fmt.Errorf("%w: fonts.size_tolerance must not be negative", ErrInvalidInput)
	case !s.Paragraph.BodyAlignment.IsValid():
		return fmt.Errorf("%w: unknown body alignment %q", ErrInvalidInput, s.Paragraph.BodyAlignment)
	case s.Paragraph.IndentHardToleranceCM < s.Paragraph.IndentToleranceCM:
		return fmt.Errorf("%w: indent hard tolerance is below the soft tolerance", ErrInvalidInput)
	case s.Paragraph.LineSpacingHardTolerance < s.Paragraph.LineSpacingSoftTolerance:
		return fmt.Errorf("%w: line spacing hard tolerance is below the soft tolerance", ErrInvalidInput)
	case s.Page.LinesPerPage <= 0 || s.Page.CharsPerLine <= 0:
		return fmt.Errorf("%w: page.lines_per_page and page.chars_per_line must be positive", ErrInvalidInput)
	case s.PreviewLength < 0:
		return fmt.Errorf("%w: preview_length must not be negative", ErrInvalidInput)
	}
	if _, err := regexp.Compile(s.Structure.CaptionPattern); err != nil {
		return fmt.Errorf("%w: caption_pattern: %v", ErrInvalidInput, err)
	}
	return nil
}

// RuleDisabled reports whether id appears in DisabledRules.
func (s HouseStyle) RuleDisabled(id string) bool {
	for _, d := range s.DisabledRules {
		if d == id {
			return true
		}
	}
	return false
}
