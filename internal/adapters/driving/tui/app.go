package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/views/findings"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/views/paragraph"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// App is the review application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// path is the reviewed document.
	path string

	styles *styles.Styles
	keymap *keymap.KeyMap

	findingsView  *findings.View
	paragraphView *paragraph.View
	statusBar     *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	document *domain.Document
	report   *domain.Report

	// err holds the last load error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a review application for the document at path.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if path == "" {
		return nil, ErrMissingPath
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		path:          path,
		styles:        s,
		keymap:        km,
		findingsView:  findings.NewView(s, km),
		paragraphView: paragraph.NewView(s, km),
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewFindings,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docstyle - "+filepath.Base(a.path)),
		a.load(),
	)
}

// load returns a command that evaluates the document.
func (a *App) load() tea.Cmd {
	ctx, check, path := a.ctx, a.ports.Check, a.path
	return func() tea.Msg {
		doc, report, err := check.Inspect(ctx, path)
		return messages.ReportLoaded{Document: doc, Report: report, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ReportLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.document = msg.Document
		a.report = msg.Report
		a.findingsView.SetReport(msg.Report)
		a.statusBar.SetCounts(msg.Report.Counts())
		a.statusBar.SetState(status.StateFindings)
		return a, nil

	case messages.RecheckRequested:
		a.statusBar.SetState(status.StateLoading)
		return a, a.load()

	case messages.FindingSelected:
		var p *domain.Paragraph
		if msg.Finding.ParagraphIndex != nil {
			if para, ok := a.document.Paragraph(*msg.Finding.ParagraphIndex); ok {
				p = &para
			}
		}
		a.paragraphView.SetFinding(msg.Finding, p)
		a.currentView = messages.ViewParagraph
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewFindings:
		a.findingsView, cmd = a.findingsView.Update(msg)
	case messages.ViewParagraph:
		a.paragraphView, cmd = a.paragraphView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// handleKey routes key presses: global keys first, then the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	if k == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewFindings
		} else if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil

	case messages.ViewParagraph:
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.paragraphView, cmd = a.paragraphView.Update(msg)
		return a, cmd

	case messages.ViewFindings:
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		case keymap.Matches(k, a.keymap.Recheck):
			return a, func() tea.Msg { return messages.RecheckRequested{} }
		}
		if a.report == nil {
			return a, nil
		}
		a.findingsView, cmd = a.findingsView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("docstyle review"))
	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  %s · %s", a.path, a.ports.Check.Style().Name)))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %s", a.err)))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Help.Render("[r] retry  [q] quit"))
		b.WriteString("\n")
	case a.currentView == messages.ViewHelp:
		b.WriteString(a.viewHelp())
	case a.currentView == messages.ViewParagraph:
		b.WriteString(a.paragraphView.View())
		b.WriteString("\n")
	case a.report == nil:
		b.WriteString(a.styles.Muted.Render("Checking document..."))
		b.WriteString("\n")
	default:
		b.WriteString(a.findingsView.View())
	}

	b.WriteString(a.statusBar.View())
	return b.String()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to findings"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Report returns the loaded report, or nil before loading finishes.
func (a *App) Report() *domain.Report {
	return a.report
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SelectedParagraph returns the paragraph shown in the detail view.
func (a *App) SelectedParagraph() *domain.Paragraph {
	return a.paragraphView.Paragraph()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Header takes two lines, the status bar one.
	body := max(height-3, 5)
	a.findingsView.SetDimensions(width, body)
	a.paragraphView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
