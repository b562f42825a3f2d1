package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

func TestNew_DefaultOrder(t *testing.T) {
	s := defaultSet(t)

	var ids []string
	for _, r := range s.ParagraphRules() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{
		"font-family", "font-size", "caption-font-size", "body-alignment", "first-line-indent",
		"indent-by-whitespace", "line-spacing", "figure-caption-dot", "heading-numbering",
		"tabs-in-text", "leading-spaces", "nonbreaking-space", "hyphen-dash",
	}, ids)
	assert.Len(t, s.DocumentRules(), 13)
	assert.Len(t, s.Info(), 26)
	assert.Equal(t, 80, s.PreviewLength())
}

func TestNew_DisabledRules(t *testing.T) {
	style := domain.DefaultHouseStyle()
	style.DisabledRules = []string{"page-count", "tabs-in-text"}

	s, err := New(style)
	require.NoError(t, err)

	assert.Len(t, s.ParagraphRules(), 12)
	assert.Len(t, s.DocumentRules(), 12)

	info, ok := s.Lookup("page-count")
	require.True(t, ok)
	assert.False(t, info.Enabled)
	assert.Equal(t, domain.ScopeDocument, info.Scope)
}

func TestNew_UnknownDisabledRule(t *testing.T) {
	style := domain.DefaultHouseStyle()
	style.DisabledRules = []string{"no-such-rule"}

	_, err := New(style)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
}

func TestNew_InvalidStyle(t *testing.T) {
	style := domain.DefaultHouseStyle()
	style.Fonts.BodySizes = nil

	_, err := New(style)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register("b", buildTabsInText)
	r.Register("a", buildHyphenDash)
	r.Register("b", buildLeadingSpaces)

	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.True(t, r.Has("a"))

	rule, err := r.Build("b", domain.DefaultHouseStyle())
	require.NoError(t, err)
	assert.Equal(t, "leading-spaces", rule.ID())

	_, err = r.Build("zzz", domain.DefaultHouseStyle())
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
}

type strayRule struct{}

func (strayRule) ID() string          { return "stray" }
func (strayRule) Description() string { return "neither kind" }

func TestFromRegistry_RejectsUntypedRule(t *testing.T) {
	r := NewRegistry()
	r.Register("stray", func(domain.HouseStyle) (driven.Rule, error) { return strayRule{}, nil })

	_, err := FromRegistry(r, domain.DefaultHouseStyle())
	assert.Error(t, err)
}

func TestCompliantDocument_NoFindings(t *testing.T) {
	assert.Empty(t, run(defaultSet(t), compliantDocument()))
}
