package docx

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// charProps is one layer of character formatting. Nil means "not set here".
type charProps struct {
	Font   *string
	Size   *float64
	Bold   *bool
	Italic *bool
}

// paraProps is one layer of paragraph formatting. Nil means "not set here".
type paraProps struct {
	Alignment   *domain.Alignment
	LineRule    *domain.LineSpacingRule
	Line        *float64
	SpaceBefore *float64
	SpaceAfter  *float64
	FirstLine   *float64
	Left        *float64
	Right       *float64
	Outline     *int
}

// mergeChar resolves character formatting from layers ordered
// closest first: for each attribute the first layer that sets it wins.
func mergeChar(layers ...charProps) charProps {
	var out charProps
	for _, l := range layers {
		if out.Font == nil {
			out.Font = l.Font
		}
		if out.Size == nil {
			out.Size = l.Size
		}
		if out.Bold == nil {
			out.Bold = l.Bold
		}
		if out.Italic == nil {
			out.Italic = l.Italic
		}
	}
	return out
}

// mergePara is mergeChar for paragraph formatting.
func mergePara(layers ...paraProps) paraProps {
	var out paraProps
	for _, l := range layers {
		if out.Alignment == nil {
			out.Alignment = l.Alignment
		}
		if out.LineRule == nil && out.Line == nil {
			out.LineRule, out.Line = l.LineRule, l.Line
		}
		if out.SpaceBefore == nil {
			out.SpaceBefore = l.SpaceBefore
		}
		if out.SpaceAfter == nil {
			out.SpaceAfter = l.SpaceAfter
		}
		if out.FirstLine == nil {
			out.FirstLine = l.FirstLine
		}
		if out.Left == nil {
			out.Left = l.Left
		}
		if out.Right == nil {
			out.Right = l.Right
		}
		if out.Outline == nil {
			out.Outline = l.Outline
		}
	}
	return out
}

// run converts resolved character properties to a domain run.
func (c charProps) run(text string) domain.Run {
	r := domain.Run{Text: text}
	if c.Font != nil {
		r.FontName = *c.Font
	}
	if c.Size != nil {
		r.FontSize = *c.Size
	}
	if c.Bold != nil {
		r.Bold = *c.Bold
	}
	if c.Italic != nil {
		r.Italic = *c.Italic
	}
	return r
}

// apply copies resolved paragraph properties onto p.
func (pp paraProps) apply(p *domain.Paragraph) {
	if pp.Alignment != nil {
		p.Alignment = *pp.Alignment
	}
	if pp.Line != nil {
		rule := domain.LineSpacingAuto
		if pp.LineRule != nil {
			rule = *pp.LineRule
		}
		v := *pp.Line
		if rule == domain.LineSpacingAuto {
			v /= 240
		} else {
			v /= 20
		}
		p.LineSpacing = domain.LineSpacing{Rule: rule, Value: v}
	}
	if pp.SpaceBefore != nil {
		p.SpaceBefore = *pp.SpaceBefore
	}
	if pp.SpaceAfter != nil {
		p.SpaceAfter = *pp.SpaceAfter
	}
	if pp.FirstLine != nil {
		p.Indent.FirstLine = *pp.FirstLine
	}
	if pp.Left != nil {
		p.Indent.Left = *pp.Left
	}
	if pp.Right != nil {
		p.Indent.Right = *pp.Right
	}
	if pp.Outline != nil {
		p.OutlineLevel = *pp.Outline
	}
}

// themeFonts maps theme font slots to typefaces.
type themeFonts struct {
	Major string
	Minor string
}

// readChar extracts the layer set by a w:rPr element.
func readChar(rPr *xmlquery.Node, theme themeFonts) charProps {
	var c charProps
	if rPr == nil {
		return c
	}
	if f := fontOf(child(rPr, "rFonts"), theme); f != "" {
		c.Font = &f
	}
	if s, ok := val(rPr, "sz"); ok {
		if hp, ok := number(s); ok {
			size := hp / 2
			c.Size = &size
		}
	}
	c.Bold = toggle(rPr, "b")
	c.Italic = toggle(rPr, "i")
	return c
}

// fontOf returns the Latin typeface named by w:rFonts, resolving theme slots.
func fontOf(rFonts *xmlquery.Node, theme themeFonts) string {
	if rFonts == nil {
		return ""
	}
	for _, name := range []string{"ascii", "hAnsi"} {
		if v, ok := attr(rFonts, name); ok && v != "" {
			return v
		}
	}
	for _, name := range []string{"asciiTheme", "hAnsiTheme"} {
		v, ok := attr(rFonts, name)
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(v, "major") && theme.Major != "":
			return theme.Major
		case strings.HasPrefix(v, "minor") && theme.Minor != "":
			return theme.Minor
		}
	}
	return ""
}

// readPara extracts the layer set by a w:pPr element.
func readPara(pPr *xmlquery.Node) paraProps {
	var pp paraProps
	if pPr == nil {
		return pp
	}

	if v, ok := val(pPr, "jc"); ok {
		a := alignmentOf(v)
		pp.Alignment = &a
	}

	if sp := child(pPr, "spacing"); sp != nil {
		if line, ok := numberAttr(sp, "line"); ok {
			rule := domain.LineSpacingAuto
			if r, ok := attr(sp, "lineRule"); ok {
				rule = lineRuleOf(r)
			}
			pp.Line, pp.LineRule = &line, &rule
		}
		if v, ok := numberAttr(sp, "before"); ok {
			pt := v / 20
			pp.SpaceBefore = &pt
		}
		if v, ok := numberAttr(sp, "after"); ok {
			pt := v / 20
			pp.SpaceAfter = &pt
		}
	}

	if ind := child(pPr, "ind"); ind != nil {
		if v, ok := numberAttr(ind, "firstLine"); ok {
			pt := v / 20
			pp.FirstLine = &pt
		}
		if v, ok := numberAttr(ind, "hanging"); ok {
			pt := -v / 20
			pp.FirstLine = &pt
		}
		pp.Left = twipsAttr(ind, "left", "start")
		pp.Right = twipsAttr(ind, "right", "end")
	}

	if v, ok := val(pPr, "outlineLvl"); ok {
		if lvl, ok := number(v); ok {
			// 0..8 are heading levels 1..9; 9 is body text.
			level := int(lvl) + 1
			if level > 9 || level < 1 {
				level = 0
			}
			pp.Outline = &level
		}
	}
	return pp
}

// twipsAttr reads the first present attribute as twips and returns points.
func twipsAttr(n *xmlquery.Node, names ...string) *float64 {
	for _, name := range names {
		if v, ok := numberAttr(n, name); ok {
			pt := v / 20
			return &pt
		}
	}
	return nil
}

func alignmentOf(jc string) domain.Alignment {
	switch jc {
	case "left", "start":
		return domain.AlignmentLeft
	case "right", "end":
		return domain.AlignmentRight
	case "center":
		return domain.AlignmentCenter
	case "both", "distribute", "lowKashida", "mediumKashida", "highKashida", "thaiDistribute":
		return domain.AlignmentJustify
	default:
		return domain.AlignmentUnset
	}
}

func lineRuleOf(s string) domain.LineSpacingRule {
	switch s {
	case "exact":
		return domain.LineSpacingExact
	case "atLeast":
		return domain.LineSpacingAtLeast
	default:
		return domain.LineSpacingAuto
	}
}
