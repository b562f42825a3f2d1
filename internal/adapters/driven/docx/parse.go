package docx

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// bannerBookmark marks paragraphs inserted by the annotator.
const bannerBookmark = "_DocstyleFindings"

// bodyOf returns the w:body element of a parsed document part.
func bodyOf(root *xmlquery.Node) (*xmlquery.Node, error) {
	body := xmlquery.QuerySelector(root, exprBody)
	if body == nil {
		return nil, fmt.Errorf("%w: no w:body element", domain.ErrCorruptDocument)
	}
	return body, nil
}

// bodyParagraphs returns the addressable top-level paragraphs of body.
// Banner paragraphs are not part of the document.
func bodyParagraphs(body *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for _, p := range xmlquery.QuerySelectorAll(body, exprBodyParas) {
		if !isBanner(p) {
			out = append(out, p)
		}
	}
	return out
}

// bannerParagraphs returns the top-level banner paragraphs of body.
func bannerParagraphs(body *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for _, p := range xmlquery.QuerySelectorAll(body, exprBodyParas) {
		if isBanner(p) {
			out = append(out, p)
		}
	}
	return out
}

func isBanner(p *xmlquery.Node) bool {
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if isW(c, "bookmarkStart") {
			if name, _ := attr(c, "name"); name == bannerBookmark {
				return true
			}
		}
	}
	return false
}

// builder turns parsed XML into domain records.
type builder struct {
	sheet   *styleSheet
	preview int
}

func (b *builder) document(path string, root *xmlquery.Node) (*domain.Document, error) {
	body, err := bodyOf(root)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{Path: path}
	for i, p := range bodyParagraphs(body) {
		doc.Paragraphs = append(doc.Paragraphs, b.paragraph(i, p))
	}
	doc.Sections = sections(root)
	return doc, nil
}

// paragraph resolves one w:p element.
func (b *builder) paragraph(index int, p *xmlquery.Node) domain.Paragraph {
	pPr := child(p, "pPr")
	requested, _ := val(pPr, "pStyle")
	styleID := b.sheet.paragraphStyle(requested)

	out := domain.Paragraph{
		Index:     index,
		StyleID:   styleID,
		StyleName: b.sheet.name(styleID),
	}
	mergePara(readPara(pPr), b.sheet.paraLayer(styleID), b.sheet.defaultsPara).apply(&out)

	var text strings.Builder
	walkRuns(p, func(r *xmlquery.Node) {
		t := runText(r)
		if t == "" {
			return
		}
		text.WriteString(t)
		rPr := child(r, "rPr")
		charStyle, _ := val(rPr, "rStyle")
		resolved := mergeChar(
			readChar(rPr, b.sheet.theme),
			b.sheet.charLayer(charStyle, styleID),
			b.sheet.defaultsChar,
		)
		out.Runs = append(out.Runs, resolved.run(t))
	})
	out.Text = text.String()
	out.TextPreview = domain.Preview(out.Text, b.preview)

	lead, ok := firstTextRun(out.Runs)
	if !ok {
		// Only the paragraph mark carries formatting here.
		mark := readChar(child(pPr, "rPr"), b.sheet.theme)
		lead = mergeChar(mark, b.sheet.charLayer(styleID), b.sheet.defaultsChar).run("")
	}
	out.FontName = lead.FontName
	out.FontSize = lead.FontSize
	out.Bold = lead.Bold
	out.Italic = lead.Italic
	return out
}

func firstTextRun(runs []domain.Run) (domain.Run, bool) {
	for _, r := range runs {
		if strings.TrimSpace(r.Text) != "" {
			return r, true
		}
	}
	return domain.Run{}, false
}

// walkRuns calls fn for every run of p in document order, descending
// into hyperlinks, insertions, fields and content controls.
func walkRuns(n *xmlquery.Node, fn func(*xmlquery.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type != xmlquery.ElementNode:
		case isW(c, "r"):
			fn(c)
		case isW(c, "pPr"), isW(c, "del"), isW(c, "moveFrom"):
		default:
			walkRuns(c, fn)
		}
	}
}

// runText returns the visible text of a run.
func runText(r *xmlquery.Node) string {
	var sb strings.Builder
	for c := r.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case isW(c, "t"):
			sb.WriteString(c.InnerText())
		case isW(c, "tab"):
			sb.WriteByte('\t')
		case isW(c, "br"), isW(c, "cr"):
			sb.WriteByte('\n')
		case isW(c, "noBreakHyphen"):
			sb.WriteString("\u2011")
		case isW(c, "softHyphen"):
			sb.WriteString("\u00ad")
		}
	}
	return sb.String()
}

const twipsPerInch = 1440

// sections reads every w:sectPr of the body in document order.
func sections(root *xmlquery.Node) []domain.Section {
	var out []domain.Section
	for _, s := range xmlquery.QuerySelectorAll(root, exprSections) {
		if isW(s.Parent, "sectPrChange") {
			continue
		}
		var sec domain.Section
		if sz := child(s, "pgSz"); sz != nil {
			if w, ok := numberAttr(sz, "w"); ok {
				sec.PageWidthMM = w / twipsPerInch * 25.4
			}
			if h, ok := numberAttr(sz, "h"); ok {
				sec.PageHeightMM = h / twipsPerInch * 25.4
			}
		}
		if mar := child(s, "pgMar"); mar != nil {
			sec.MarginTopCM = twipsToCM(mar, "top")
			sec.MarginBottomCM = twipsToCM(mar, "bottom")
			sec.MarginLeftCM = twipsToCM(mar, "left", "start")
			sec.MarginRightCM = twipsToCM(mar, "right", "end")
		}
		out = append(out, sec)
	}
	return out
}

func twipsToCM(n *xmlquery.Node, names ...string) float64 {
	for _, name := range names {
		if v, ok := numberAttr(n, name); ok {
			return v / twipsPerInch * 2.54
		}
	}
	return 0
}
