// Package findings provides the findings table view for the TUI.
package findings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// Fixed column widths; the context column takes the remaining width.
const (
	severityWidth  = 7
	ruleWidth      = 22
	paragraphWidth = 6
	messageWidth   = 44
	minContext     = 12
)

// View lists the findings of one report in a navigable table.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	table  table.Model

	findings     []domain.Finding
	visible      []domain.Finding
	problemsOnly bool

	width  int
	height int
}

// NewView creates a findings view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = s.Header.
		BorderStyle(s.Border.GetBorderStyle()).
		BorderForeground(s.Theme().Border).
		BorderBottom(true)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &View{
		styles: s,
		keymap: km,
		table:  t,
		width:  80,
		height: 24,
	}
}

func columns(width int) []table.Column {
	rest := width - severityWidth - ruleWidth - paragraphWidth - messageWidth - 10
	if rest < minContext {
		rest = minContext
	}
	return []table.Column{
		{Title: "Severity", Width: severityWidth},
		{Title: "Rule", Width: ruleWidth},
		{Title: "Para", Width: paragraphWidth},
		{Title: "Message", Width: messageWidth},
		{Title: "Context", Width: rest},
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetReport replaces the listed findings and resets the cursor.
func (v *View) SetReport(report *domain.Report) {
	v.findings = nil
	if report != nil {
		v.findings = report.Findings
	}
	v.refresh()
	v.table.GotoTop()
}

// refresh rebuilds the rows from the current filter.
func (v *View) refresh() {
	v.visible = v.visible[:0]
	for _, f := range v.findings {
		if v.problemsOnly && f.Severity == domain.SeverityOK {
			continue
		}
		v.visible = append(v.visible, f)
	}

	rows := make([]table.Row, 0, len(v.visible))
	for _, r := range domain.NewReport(v.visible).Table() {
		rows = append(rows, table.Row{
			string(r.Severity),
			r.RuleID,
			r.Paragraph,
			r.Message,
			strings.ReplaceAll(r.Context, "\n", " "),
		})
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Update handles messages for the findings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case keymap.Matches(keyMsg.String(), v.keymap.Select):
		f, ok := v.Selected()
		if !ok {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.FindingSelected{Finding: f}
		}
	case keymap.Matches(keyMsg.String(), v.keymap.Problems):
		v.problemsOnly = !v.problemsOnly
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the findings table.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Findings (%d)", len(v.visible))
	if v.problemsOnly {
		title += " · problems only"
	}
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n")

	if len(v.visible) == 0 {
		b.WriteString("\n")
		if v.problemsOnly {
			b.WriteString(v.styles.Success.Render("No problems found."))
		} else {
			b.WriteString(v.styles.Muted.Render("(No findings)"))
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.table.View())
	b.WriteString("\n")
	if f, ok := v.Selected(); ok {
		b.WriteString(v.styles.Severity(f.Severity).Render(f.Message))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.table.SetColumns(columns(width))
	// Title, header border and the selected message line.
	v.table.SetHeight(max(height-4, 3))
}

// Selected returns the finding under the cursor.
func (v *View) Selected() (domain.Finding, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.visible) {
		return domain.Finding{}, false
	}
	return v.visible[i], true
}

// Visible returns the findings currently listed.
func (v *View) Visible() []domain.Finding {
	return v.visible
}

// ProblemsOnly reports whether OK findings are hidden.
func (v *View) ProblemsOnly() bool {
	return v.problemsOnly
}
