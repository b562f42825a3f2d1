package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// WordprocessingML and DrawingML namespaces.
const (
	wordNS    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	drawingNS = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

var namespaces = map[string]string{
	"w": wordNS,
	"a": drawingNS,
}

// Compiled queries. Expressions are constant, so a compile failure is a bug.
var (
	exprBody        = mustCompile("/w:document/w:body")
	exprBodyParas   = mustCompile("w:p")
	exprSections    = mustCompile("/w:document/w:body//w:sectPr")
	exprStyles      = mustCompile("/w:styles/w:style")
	exprDefaultRPr  = mustCompile("/w:styles/w:docDefaults/w:rPrDefault/w:rPr")
	exprDefaultPPr  = mustCompile("/w:styles/w:docDefaults/w:pPrDefault/w:pPr")
	exprMajorLatin  = mustCompile("//a:fontScheme/a:majorFont/a:latin")
	exprMinorLatin  = mustCompile("//a:fontScheme/a:minorFont/a:latin")
	exprBookmarkIDs = mustCompile("//w:bookmarkStart")
)

func mustCompile(expr string) *xpath.Expr {
	e, err := xpath.CompileWithNS(expr, namespaces)
	if err != nil {
		panic("docx: bad xpath " + expr + ": " + err.Error())
	}
	return e
}

func parseXML(data []byte) (*xmlquery.Node, error) {
	return xmlquery.Parse(bytes.NewReader(data))
}

// isW reports whether n is the w:<local> element.
func isW(n *xmlquery.Node, local string) bool {
	if n == nil || n.Type != xmlquery.ElementNode || n.Data != local {
		return false
	}
	return n.NamespaceURI == wordNS || (n.NamespaceURI == "" && n.Prefix == "w")
}

// child returns the first w:<local> child of n.
func child(n *xmlquery.Node, local string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isW(c, local) {
			return c
		}
	}
	return nil
}

// attr returns the w:<local> attribute of n.
func attr(n *xmlquery.Node, local string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local != local {
			continue
		}
		if a.NamespaceURI == wordNS || a.Name.Space == "w" || a.Name.Space == wordNS {
			return a.Value, true
		}
	}
	return "", false
}

// plainAttr returns an attribute without namespace, as used by DrawingML.
func plainAttr(n *xmlquery.Node, local string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

// val returns the w:val attribute of the w:<local> child.
func val(n *xmlquery.Node, local string) (string, bool) {
	c := child(n, local)
	if c == nil {
		return "", false
	}
	return attr(c, "val")
}

// toggle reads an on/off property such as w:b. An element without w:val is on.
func toggle(n *xmlquery.Node, local string) *bool {
	c := child(n, local)
	if c == nil {
		return nil
	}
	on := true
	if v, ok := attr(c, "val"); ok {
		switch strings.ToLower(v) {
		case "0", "false", "off", "none":
			on = false
		}
	}
	return &on
}

// number parses a numeric measure. Word writes some of them as decimals.
func number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func numberAttr(n *xmlquery.Node, local string) (float64, bool) {
	s, ok := attr(n, local)
	if !ok {
		return 0, false
	}
	return number(s)
}

// newW creates a detached w:<local> element with the given w: attributes
// as name, value pairs.
func newW(local string, attrs ...string) *xmlquery.Node {
	n := &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Data:         local,
		Prefix:       "w",
		NamespaceURI: wordNS,
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		setAttr(n, attrs[i], attrs[i+1])
	}
	return n
}

// setAttr sets the w:<local> attribute of n.
func setAttr(n *xmlquery.Node, local, value string) {
	for i, a := range n.Attr {
		if a.Name.Local == local && (a.NamespaceURI == wordNS || a.Name.Space == "w") {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, xmlquery.Attr{
		Name:         xml.Name{Space: "w", Local: local},
		Value:        value,
		NamespaceURI: wordNS,
	})
}

// removeAttr deletes the w:<local> attribute of n.
func removeAttr(n *xmlquery.Node, local string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Name.Local == local && (a.NamespaceURI == wordNS || a.Name.Space == "w") {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// insertBefore links n into the tree immediately before ref.
func insertBefore(ref, n *xmlquery.Node) {
	n.Parent = ref.Parent
	n.PrevSibling = ref.PrevSibling
	n.NextSibling = ref
	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = n
	} else if ref.Parent != nil {
		ref.Parent.FirstChild = n
	}
	ref.PrevSibling = n
}

// insertOrdered adds c to parent, keeping the child sequence the schema
// prescribes. order lists element names in schema order; unknown existing
// children are treated as coming after c.
func insertOrdered(parent, c *xmlquery.Node, order []string) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	mine, ok := rank[c.Data]
	if !ok {
		xmlquery.AddChild(parent, c)
		return
	}
	for s := parent.FirstChild; s != nil; s = s.NextSibling {
		if s.Type != xmlquery.ElementNode {
			continue
		}
		r, known := rank[s.Data]
		if !known || r > mine {
			insertBefore(s, c)
			return
		}
	}
	xmlquery.AddChild(parent, c)
}

// ensure returns the w:<local> child of parent, creating it in schema order.
func ensure(parent *xmlquery.Node, local string, order []string) *xmlquery.Node {
	if c := child(parent, local); c != nil {
		return c
	}
	c := newW(local)
	insertOrdered(parent, c, order)
	return c
}

// Child orders of w:p, w:pPr and w:rPr, as far as they matter here.
var (
	paragraphOrder = []string{"pPr"}
	runOrder       = []string{"rPr"}
	pPrOrder       = []string{
		"pStyle", "keepNext", "keepLines", "pageBreakBefore", "framePr", "widowControl",
		"numPr", "suppressLineNumbers", "pBdr", "shd", "tabs", "suppressAutoHyphens",
		"kinsoku", "wordWrap", "overflowPunct", "topLinePunct", "autoSpaceDE", "autoSpaceDN",
		"bidi", "adjustRightInd", "snapToGrid", "spacing", "ind", "contextualSpacing",
		"mirrorIndents", "suppressOverlap", "jc", "textDirection", "textAlignment",
		"textboxTightWrap", "outlineLvl", "divId", "cnfStyle", "rPr", "sectPr", "pPrChange",
	}
	rPrOrder = []string{
		"rStyle", "rFonts", "b", "bCs", "i", "iCs", "caps", "smallCaps", "strike", "dstrike",
		"outline", "shadow", "emboss", "imprint", "noProof", "snapToGrid", "vanish",
		"webHidden", "color", "spacing", "w", "kern", "position", "sz", "szCs", "highlight",
		"u", "effect", "bdr", "shd", "fitText", "vertAlign", "rtl", "cs", "em", "lang",
		"eastAsianLayout", "specVanish", "oMath", "rPrChange",
	}
)
