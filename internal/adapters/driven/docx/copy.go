package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Ensure Copy implements the interface.
var _ driven.DocumentCopy = (*Copy)(nil)

// Copy is a mutable, in-memory copy of a package. Only word/document.xml
// is rewritten; every other part is copied raw when the copy is written.
type Copy struct {
	source string
	pkg    *pkg
	root   *xmlquery.Node
	body   *xmlquery.Node
	paras  []*xmlquery.Node
}

func newCopy(source string, data []byte) (*Copy, error) {
	p, err := openPackage(data)
	if err != nil {
		return nil, err
	}
	docXML, err := p.read(partDocument)
	if err != nil {
		return nil, err
	}
	root, err := parseXML(docXML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, partDocument, err)
	}
	body, err := bodyOf(root)
	if err != nil {
		return nil, err
	}
	return &Copy{
		source: source,
		pkg:    p,
		root:   root,
		body:   body,
		paras:  bodyParagraphs(body),
	}, nil
}

// ParagraphCount returns the number of addressable paragraphs.
func (c *Copy) ParagraphCount() int {
	return len(c.paras)
}

func (c *Copy) paragraph(i int) (*xmlquery.Node, error) {
	if i < 0 || i >= len(c.paras) {
		return nil, fmt.Errorf("paragraph %d out of range [0, %d)", i, len(c.paras))
	}
	return c.paras[i], nil
}

// ParagraphText returns the text of paragraph i.
func (c *Copy) ParagraphText(i int) (string, error) {
	p, err := c.paragraph(i)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	walkRuns(p, func(r *xmlquery.Node) { sb.WriteString(runText(r)) })
	return sb.String(), nil
}

// ColorParagraph sets the colour of every run of paragraph i, or of the
// paragraph mark when there are no runs. Theme colours are dropped so the
// explicit colour shows.
func (c *Copy) ColorParagraph(i int, color string) error {
	if !domain.IsHexColor(color) {
		return fmt.Errorf("%w: colour %q", domain.ErrInvalidInput, color)
	}
	p, err := c.paragraph(i)
	if err != nil {
		return err
	}

	var runs []*xmlquery.Node
	walkRuns(p, func(r *xmlquery.Node) { runs = append(runs, r) })
	if len(runs) == 0 {
		pPr := ensure(p, "pPr", paragraphOrder)
		setColor(ensure(pPr, "rPr", pPrOrder), color)
		return nil
	}
	for _, r := range runs {
		setColor(ensure(r, "rPr", runOrder), color)
	}
	return nil
}

func setColor(rPr *xmlquery.Node, color string) {
	el := ensure(rPr, "color", rPrOrder)
	setAttr(el, "val", strings.ToUpper(color))
	removeAttr(el, "themeColor")
	removeAttr(el, "themeTint")
	removeAttr(el, "themeShade")
}

// RemoveBanners deletes banner paragraphs left by an earlier annotation.
func (c *Copy) RemoveBanners() int {
	banners := bannerParagraphs(c.body)
	for _, p := range banners {
		xmlquery.RemoveFromTree(p)
	}
	return len(banners)
}

// InsertBanner adds a bold banner paragraph before paragraph before,
// one line per entry. before == ParagraphCount appends it after the last
// paragraph.
func (c *Copy) InsertBanner(before int, lines []string, color string) error {
	if before < 0 || before > len(c.paras) {
		return fmt.Errorf("banner position %d out of range [0, %d]", before, len(c.paras))
	}
	if !domain.IsHexColor(color) {
		return fmt.Errorf("%w: colour %q", domain.ErrInvalidInput, color)
	}

	banner := c.banner(lines, strings.ToUpper(color))
	switch {
	case before < len(c.paras):
		insertBefore(c.paras[before], banner)
	case child(c.body, "sectPr") != nil:
		insertBefore(child(c.body, "sectPr"), banner)
	default:
		xmlquery.AddChild(c.body, banner)
	}
	return nil
}

func (c *Copy) banner(lines []string, color string) *xmlquery.Node {
	id := strconv.Itoa(c.nextBookmarkID())

	p := newW("p")
	pPr := newW("pPr")
	xmlquery.AddChild(pPr, bannerRunProps(color))
	xmlquery.AddChild(p, pPr)
	xmlquery.AddChild(p, newW("bookmarkStart", "id", id, "name", bannerBookmark))

	r := newW("r")
	xmlquery.AddChild(r, bannerRunProps(color))
	for i, line := range lines {
		if i > 0 {
			xmlquery.AddChild(r, newW("br"))
		}
		t := newW("t")
		t.Attr = append(t.Attr, xmlquery.Attr{
			Name:  xml.Name{Space: "xml", Local: "space"},
			Value: "preserve",
		})
		xmlquery.AddChild(t, &xmlquery.Node{Type: xmlquery.TextNode, Data: line})
		xmlquery.AddChild(r, t)
	}
	xmlquery.AddChild(p, r)
	xmlquery.AddChild(p, newW("bookmarkEnd", "id", id))
	return p
}

func bannerRunProps(color string) *xmlquery.Node {
	rPr := newW("rPr")
	xmlquery.AddChild(rPr, newW("b"))
	xmlquery.AddChild(rPr, newW("color", "val", color))
	return rPr
}

// nextBookmarkID returns an id above every bookmark id in the document.
func (c *Copy) nextBookmarkID() int {
	next := 0
	for _, b := range xmlquery.QuerySelectorAll(c.root, exprBookmarkIDs) {
		if v, ok := numberAttr(b, "id"); ok && int(v) >= next {
			next = int(v) + 1
		}
	}
	return next
}

// Bytes serialises the copy as a complete package.
func (c *Copy) Bytes() ([]byte, error) {
	var docXML bytes.Buffer
	if err := c.root.WriteWithOptions(&docXML, xmlquery.WithPreserveSpace(), xmlquery.WithEmptyTagSupport()); err != nil {
		return nil, fmt.Errorf("serialise %s: %w", partDocument, err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range c.pkg.zr.File {
		if f.Name != partDocument {
			if err := zw.Copy(f); err != nil {
				return nil, fmt.Errorf("copy part %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("write part %s: %w", f.Name, err)
		}
		if _, err := w.Write(docXML.Bytes()); err != nil {
			return nil, fmt.Errorf("write part %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Save writes the copy to path through a temporary file in the same
// directory. Writing onto the source file is refused.
func (c *Copy) Save(path string) error {
	if sameFile(path, c.source) {
		return fmt.Errorf("%w: refusing to overwrite source %s", domain.ErrAnnotationWrite, c.source)
	}

	data, err := c.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".docstyle-*.docx")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAnnotationWrite, err)
	}
	return nil
}

// sameFile reports whether a and b name the same file, by path or by inode.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
