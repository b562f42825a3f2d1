// Package paragraph provides the finding detail view for the TUI.
// It shows the finding together with the resolved formatting and full
// text of the paragraph it points at.
package paragraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// View shows one finding and its paragraph in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	finding   domain.Finding
	paragraph *domain.Paragraph

	width  int
	height int
}

// NewView creates a paragraph view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   22,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetFinding shows f. p is the paragraph f points at, or nil for
// document-level findings.
func (v *View) SetFinding(f domain.Finding, p *domain.Paragraph) {
	v.finding = f
	v.paragraph = p
	v.viewport.SetContent(v.render())
	v.viewport.GotoTop()
}

// Update handles messages for the paragraph view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keymap.Matches(keyMsg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFindings}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the finding detail.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		fmt.Sprintf("[↑/↓/PgUp/PgDn] scroll  [esc] back  %3.f%%", v.viewport.ScrollPercent()*100)))
	return b.String()
}

// render builds the viewport content.
func (v *View) render() string {
	f := v.finding
	var b strings.Builder

	b.WriteString(v.styles.Severity(f.Severity).Render(string(f.Severity)))
	b.WriteString(" ")
	b.WriteString(v.styles.Title.Render(f.RuleID))
	b.WriteString("\n")
	b.WriteString(v.wrap(f.Message))
	b.WriteString("\n\n")

	p := v.paragraph
	if p == nil {
		b.WriteString(v.styles.Muted.Render("Applies to the whole document."))
		b.WriteString("\n")
		return b.String()
	}

	v.field(&b, "Paragraph", strconv.Itoa(p.Index))
	if p.StyleName != "" || p.StyleID != "" {
		v.field(&b, "Style", firstNonEmpty(p.StyleName, p.StyleID))
	}
	v.field(&b, "Alignment", p.Alignment.String())
	v.field(&b, "Font", describeFont(p.FontName, p.FontSize, p.Bold, p.Italic))
	v.field(&b, "Line spacing", describeSpacing(p.LineSpacing))
	v.field(&b, "Indent", fmt.Sprintf("first %.1fpt, left %.1fpt, right %.1fpt",
		p.Indent.FirstLine, p.Indent.Left, p.Indent.Right))
	v.field(&b, "Spacing", fmt.Sprintf("before %.1fpt, after %.1fpt", p.SpaceBefore, p.SpaceAfter))
	if p.OutlineLevel > 0 {
		v.field(&b, "Outline", strconv.Itoa(p.OutlineLevel))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Text"))
	b.WriteString("\n")
	if p.IsEmpty() {
		b.WriteString(v.styles.Muted.Render("(empty)"))
	} else {
		b.WriteString(v.wrap(visibleWhitespace(p.Text)))
	}
	b.WriteString("\n")

	if len(p.Runs) > 1 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Runs (%d)", len(p.Runs))))
		b.WriteString("\n")
		for i, r := range p.Runs {
			line := fmt.Sprintf("%2d  %-28s %s", i,
				describeFont(r.FontName, r.FontSize, r.Bold, r.Italic),
				domain.Preview(r.Text, 40))
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *View) field(b *strings.Builder, label, value string) {
	b.WriteString(v.styles.Label.Render(label))
	b.WriteString(v.styles.Normal.Render(value))
	b.WriteString("\n")
}

func (v *View) wrap(text string) string {
	return lipgloss.NewStyle().Width(max(v.width-2, 20)).Render(text)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-2, 3)
	v.viewport.SetContent(v.render())
}

// Finding returns the finding on display.
func (v *View) Finding() domain.Finding {
	return v.finding
}

// Paragraph returns the paragraph on display, or nil.
func (v *View) Paragraph() *domain.Paragraph {
	return v.paragraph
}

func describeFont(name string, size float64, bold, italic bool) string {
	parts := []string{firstNonEmpty(name, "(unresolved font)")}
	if size > 0 {
		parts = append(parts, strconv.FormatFloat(size, 'f', -1, 64)+"pt")
	}
	if bold {
		parts = append(parts, "bold")
	}
	if italic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, " ")
}

func describeSpacing(s domain.LineSpacing) string {
	if m, ok := s.Multiple(); ok {
		if s.Rule == domain.LineSpacingUnset {
			return "single (unset)"
		}
		return strconv.FormatFloat(m, 'f', 2, 64) + " lines"
	}
	return fmt.Sprintf("%s %.1fpt", s.Rule, s.Value)
}

// visibleWhitespace marks tabs and no-break spaces so layout problems show.
func visibleWhitespace(text string) string {
	return strings.NewReplacer("\t", "→", "\u00a0", "·").Replace(text)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
