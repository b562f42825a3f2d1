package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Package part names.
const (
	partDocument = "word/document.xml"
	partStyles   = "word/styles.xml"
	partTheme    = "word/theme/theme1.xml"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads .docx files.
type Loader struct {
	preview int
}

// NewLoader creates a loader. previewLength bounds Paragraph.TextPreview;
// zero or less uses the default house style's length.
func NewLoader(previewLength int) *Loader {
	if previewLength <= 0 {
		previewLength = domain.DefaultHouseStyle().PreviewLength
	}
	return &Loader{preview: previewLength}
}

// Load reads path fully into memory, closes it and resolves its paragraphs.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, driven.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	pkg, err := openPackage(data)
	if err != nil {
		return nil, nil, err
	}

	docXML, err := pkg.read(partDocument)
	if err != nil {
		return nil, nil, err
	}
	root, err := parseXML(docXML)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, partDocument, err)
	}

	themeXML, _ := pkg.readOptional(partTheme)
	stylesXML, err := pkg.readOptional(partStyles)
	if err != nil {
		return nil, nil, err
	}
	sheet, err := parseStyles(stylesXML, parseTheme(themeXML))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, partStyles, err)
	}

	b := &builder{sheet: sheet, preview: l.preview}
	doc, err := b.document(path, root)
	if err != nil {
		return nil, nil, err
	}

	sum := blake3.Sum256(data)
	return doc, &Source{path: path, data: data, digest: hex.EncodeToString(sum[:])}, nil
}

// pkg is an opened package held in memory.
type pkg struct {
	zr *zip.Reader
}

// openPackage checks that data is a zip with a main document part.
func openPackage(data []byte) (*pkg, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip package: %v", domain.ErrUnreadableDocument, err)
	}
	p := &pkg{zr: zr}
	if p.file(partDocument) == nil {
		return nil, fmt.Errorf("%w: no %s part", domain.ErrUnreadableDocument, partDocument)
	}
	return p, nil
}

func (p *pkg) file(name string) *zip.File {
	for _, f := range p.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// read returns the contents of a part that must exist.
func (p *pkg) read(name string) ([]byte, error) {
	f := p.file(name)
	if f == nil {
		return nil, fmt.Errorf("%w: no %s part", domain.ErrUnreadableDocument, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptDocument, name, err)
	}
	return data, nil
}

// readOptional is read for parts a package may omit.
func (p *pkg) readOptional(name string) ([]byte, error) {
	if p.file(name) == nil {
		return nil, nil
	}
	return p.read(name)
}
