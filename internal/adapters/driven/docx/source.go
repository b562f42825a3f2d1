package docx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

var errClosed = errors.New("source document closed")

// Ensure Source implements the interface.
var _ driven.SourceDocument = (*Source)(nil)

// Source holds the original bytes of a loaded file. The file itself is
// already closed; Source never writes anywhere.
type Source struct {
	path   string
	digest string

	mu   sync.Mutex
	data []byte
}

// Path returns the file the document was loaded from.
func (s *Source) Path() string { return s.path }

// Digest returns the hex BLAKE3 digest of the original bytes.
func (s *Source) Digest() string { return s.digest }

// Copy parses the original bytes into a new mutable copy.
func (s *Source) Copy() (driven.DocumentCopy, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if data == nil {
		return nil, errClosed
	}
	cp, err := newCopy(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("copy %s: %w", s.path, err)
	}
	return cp, nil
}

// Close drops the original bytes. It is safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}
