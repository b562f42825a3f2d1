package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// stubRule is a configurable paragraph and document rule.
type stubRule struct {
	id   string
	para func(p domain.Paragraph) *domain.Violation
	doc  func(doc *domain.Document) *domain.Violation
}

func (r *stubRule) ID() string          { return r.id }
func (r *stubRule) Description() string { return "stub " + r.id }

func (r *stubRule) CheckParagraph(p domain.Paragraph, _ *domain.RuleContext) *domain.Violation {
	return r.para(p)
}

func (r *stubRule) CheckDocument(doc *domain.Document, _ *domain.RuleContext) *domain.Violation {
	return r.doc(doc)
}

// stubRuleSet serves fixed rule lists.
type stubRuleSet struct {
	paragraph []driven.ParagraphRule
	document  []driven.DocumentRule
	prepared  int
	mu        sync.Mutex
}

func (s *stubRuleSet) Prepare(doc *domain.Document) *domain.RuleContext {
	s.mu.Lock()
	s.prepared++
	s.mu.Unlock()
	return &domain.RuleContext{ParagraphCount: len(doc.Paragraphs)}
}

func (s *stubRuleSet) ParagraphRules() []driven.ParagraphRule { return s.paragraph }
func (s *stubRuleSet) DocumentRules() []driven.DocumentRule   { return s.document }
func (s *stubRuleSet) PreviewLength() int                     { return 5 }
func (s *stubRuleSet) Style() domain.HouseStyle               { return domain.DefaultHouseStyle() }
func (s *stubRuleSet) Info() []domain.RuleInfo                { return nil }

// mockCopy records annotation calls.
type mockCopy struct {
	texts   []string
	colors  map[int]string
	banners [][]string
	at      []int
	removed int
	saved   string
	saveErr error
}

func newMockCopy(texts ...string) *mockCopy {
	return &mockCopy{texts: texts, colors: make(map[int]string)}
}

func (c *mockCopy) ParagraphCount() int { return len(c.texts) }

func (c *mockCopy) ParagraphText(i int) (string, error) {
	if i < 0 || i >= len(c.texts) {
		return "", fmt.Errorf("paragraph %d out of range", i)
	}
	return c.texts[i], nil
}

func (c *mockCopy) ColorParagraph(i int, color string) error {
	c.colors[i] = color
	return nil
}

func (c *mockCopy) RemoveBanners() int {
	n := len(c.banners)
	c.removed += n
	c.banners, c.at = nil, nil
	return n
}

func (c *mockCopy) InsertBanner(before int, lines []string, _ string) error {
	c.banners = append(c.banners, lines)
	c.at = append(c.at, before)
	return nil
}

func (c *mockCopy) Bytes() ([]byte, error) { return []byte("copy"), nil }

func (c *mockCopy) Save(path string) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.saved = path
	return os.WriteFile(path, []byte("copy"), 0600)
}

// mockSource hands out one prepared copy.
type mockSource struct {
	path   string
	copy   *mockCopy
	mu     sync.Mutex
	closed bool
}

func (s *mockSource) Path() string   { return s.path }
func (s *mockSource) Digest() string { return "digest-" + s.path }

func (s *mockSource) Copy() (driven.DocumentCopy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("closed")
	}
	return s.copy, nil
}

func (s *mockSource) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *mockSource) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// mockLoader serves documents by path.
type mockLoader struct {
	mu      sync.Mutex
	docs    map[string]*domain.Document
	errs    map[string]error
	sources map[string]*mockSource
}

func newMockLoader() *mockLoader {
	return &mockLoader{
		docs:    make(map[string]*domain.Document),
		errs:    make(map[string]error),
		sources: make(map[string]*mockSource),
	}
}

func (l *mockLoader) add(path string, texts ...string) {
	doc := &domain.Document{Path: path}
	for i, text := range texts {
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{Index: i, Text: text})
	}
	l.docs[path] = doc
}

func (l *mockLoader) Load(ctx context.Context, path string) (*domain.Document, driven.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.errs[path]; ok {
		return nil, nil, err
	}
	doc, ok := l.docs[path]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnreadableDocument, path)
	}
	texts := make([]string, len(doc.Paragraphs))
	for i, p := range doc.Paragraphs {
		texts[i] = p.Text
	}
	src := &mockSource{path: path, copy: newMockCopy(texts...)}
	l.sources[path] = src
	return doc, src, nil
}

func (l *mockLoader) source(path string) *mockSource {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sources[path]
}

// mockStyleLoader serves profiles from a map; "" resolves to the default.
type mockStyleLoader struct {
	profiles map[string]domain.HouseStyle
	loaded   []string
}

func newMockStyleLoader(names ...string) *mockStyleLoader {
	l := &mockStyleLoader{profiles: map[string]domain.HouseStyle{}}
	for _, name := range names {
		hs := domain.DefaultHouseStyle()
		hs.Name = name
		l.profiles[name] = hs
	}
	return l
}

func (l *mockStyleLoader) Load(name string) (domain.HouseStyle, error) {
	l.loaded = append(l.loaded, name)
	if name == "" || name == domain.DefaultStyleName {
		return domain.DefaultHouseStyle(), nil
	}
	hs, ok := l.profiles[name]
	if !ok {
		return domain.HouseStyle{}, fmt.Errorf("%w: %s", domain.ErrUnknownProfile, name)
	}
	return hs, nil
}

func (l *mockStyleLoader) List() ([]string, error) {
	names := []string{domain.DefaultStyleName}
	for name := range l.profiles {
		names = append(names, name)
	}
	return names, nil
}

func (l *mockStyleLoader) Encode(hs domain.HouseStyle, format string) ([]byte, error) {
	if format != "toml" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, format)
	}
	return []byte("name = \"" + hs.Name + "\"\n"), nil
}
