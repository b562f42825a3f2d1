package driven

import (
	"context"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// DocumentLoader reads a document file into paragraph records.
type DocumentLoader interface {
	// Load returns the resolved document and a handle to the original.
	// Fails with domain.ErrUnreadableDocument or domain.ErrCorruptDocument.
	// The caller must Close the returned SourceDocument.
	Load(ctx context.Context, path string) (*domain.Document, SourceDocument, error)
}

// SourceDocument is a read-only handle to a loaded original.
// Nothing reachable through it can change the file it came from.
type SourceDocument interface {
	// Path returns the file the document was loaded from.
	Path() string

	// Digest returns the hex BLAKE3 digest of the original bytes.
	Digest() string

	// Copy returns a fresh, independent mutable copy of the original.
	Copy() (DocumentCopy, error)

	// Close releases the handle. Further Copy calls fail.
	Close() error
}

// DocumentCopy is a mutable in-memory copy of a document.
// Paragraph indices match those of the loaded domain.Document.
type DocumentCopy interface {
	// ParagraphCount returns the number of addressable paragraphs.
	ParagraphCount() int

	// ParagraphText returns the text of paragraph i.
	ParagraphText(i int) (string, error)

	// ColorParagraph sets the text colour of every run of paragraph i,
	// or of the paragraph mark when it has no runs. color is RRGGBB hex.
	ColorParagraph(i int, color string) error

	// RemoveBanners deletes previously inserted banner paragraphs.
	RemoveBanners() int

	// InsertBanner adds one banner paragraph before paragraph i.
	// Each line is rendered on its own line in bold.
	InsertBanner(before int, lines []string, color string) error

	// Bytes serialises the copy as a complete package.
	Bytes() ([]byte, error)

	// Save writes the copy atomically. Failures wrap domain.ErrAnnotationWrite.
	Save(path string) error
}
