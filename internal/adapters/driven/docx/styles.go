package docx

import (
	"github.com/antchfx/xmlquery"
)

// style is one w:style entry of word/styles.xml.
type style struct {
	ID      string
	Name    string
	Type    string
	BasedOn string
	Para    paraProps
	Char    charProps
}

// styleSheet holds the parsed styles part and theme fonts.
type styleSheet struct {
	styles       map[string]*style
	defaultPara  string
	defaultsPara paraProps
	defaultsChar charProps
	theme        themeFonts
}

// parseTheme reads the Latin major and minor fonts from a theme part.
// A missing or unparsable theme only leaves theme fonts unresolved.
func parseTheme(data []byte) themeFonts {
	if len(data) == 0 {
		return themeFonts{}
	}
	root, err := parseXML(data)
	if err != nil {
		return themeFonts{}
	}
	return themeFonts{
		Major: plainAttr(xmlquery.QuerySelector(root, exprMajorLatin), "typeface"),
		Minor: plainAttr(xmlquery.QuerySelector(root, exprMinorLatin), "typeface"),
	}
}

// parseStyles reads word/styles.xml. Empty data gives an empty sheet.
func parseStyles(data []byte, theme themeFonts) (*styleSheet, error) {
	sheet := &styleSheet{styles: make(map[string]*style), theme: theme}
	if len(data) == 0 {
		return sheet, nil
	}
	root, err := parseXML(data)
	if err != nil {
		return nil, err
	}

	sheet.defaultsChar = readChar(xmlquery.QuerySelector(root, exprDefaultRPr), theme)
	sheet.defaultsPara = readPara(xmlquery.QuerySelector(root, exprDefaultPPr))

	for _, n := range xmlquery.QuerySelectorAll(root, exprStyles) {
		id, _ := attr(n, "styleId")
		if id == "" {
			continue
		}
		st := &style{ID: id}
		st.Type, _ = attr(n, "type")
		st.Name, _ = val(n, "name")
		st.BasedOn, _ = val(n, "basedOn")
		st.Para = readPara(child(n, "pPr"))
		st.Char = readChar(child(n, "rPr"), theme)
		sheet.styles[id] = st

		if d, ok := attr(n, "default"); ok && (d == "1" || d == "true" || d == "on") && st.Type == "paragraph" {
			sheet.defaultPara = id
		}
	}
	return sheet, nil
}

// chain returns the style and its basedOn ancestors, closest first.
// A cycle or a dangling reference ends the chain.
func (s *styleSheet) chain(id string) []*style {
	var out []*style
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		seen[id] = true
		st, ok := s.styles[id]
		if !ok {
			break
		}
		out = append(out, st)
		id = st.BasedOn
	}
	return out
}

// paragraphStyle returns the effective paragraph style id, falling back
// to the default paragraph style.
func (s *styleSheet) paragraphStyle(id string) string {
	if _, ok := s.styles[id]; ok {
		return id
	}
	return s.defaultPara
}

// name returns the display name of a style, or its id.
func (s *styleSheet) name(id string) string {
	if st, ok := s.styles[id]; ok && st.Name != "" {
		return st.Name
	}
	return id
}

// paraLayer merges the paragraph properties of a style chain.
func (s *styleSheet) paraLayer(id string) paraProps {
	chain := s.chain(id)
	layers := make([]paraProps, len(chain))
	for i, st := range chain {
		layers[i] = st.Para
	}
	return mergePara(layers...)
}

// charLayer merges the character properties of one or more style chains,
// earlier ids taking precedence.
func (s *styleSheet) charLayer(ids ...string) charProps {
	var layers []charProps
	for _, id := range ids {
		for _, st := range s.chain(id) {
			layers = append(layers, st.Char)
		}
	}
	return mergeChar(layers...)
}
