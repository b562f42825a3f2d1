package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedApp returns an app that has been sized and received its report.
func loadedApp(t *testing.T, check *mockCheckService) *App {
	t.Helper()
	app, err := NewApp(&Ports{Check: check}, "paper.docx")
	require.NoError(t, err)
	app.SetDimensions(120, 30)
	app.Update(app.load()())
	return app
}

func TestNewApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, err := NewApp(&Ports{Check: &mockCheckService{}}, "paper.docx")

		require.NoError(t, err)
		assert.Equal(t, messages.ViewFindings, app.CurrentView())
		assert.False(t, app.Ready())
		assert.Equal(t, "Initialising...", app.View())
	})

	t.Run("missing check service", func(t *testing.T) {
		app, err := NewApp(&Ports{}, "paper.docx")

		assert.Nil(t, app)
		assert.ErrorIs(t, err, ErrMissingCheckService)
	})

	t.Run("nil ports", func(t *testing.T) {
		_, err := NewApp(nil, "paper.docx")
		assert.ErrorIs(t, err, ErrMissingCheckService)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewApp(&Ports{Check: &mockCheckService{}}, "")
		assert.ErrorIs(t, err, ErrMissingPath)
	})
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(&Ports{Check: &mockCheckService{}}, "paper.docx")
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
	assert.NotNil(t, app.Init())
}

func TestApp_LoadReport(t *testing.T) {
	check := &mockCheckService{doc: sampleDocument(), report: sampleReport()}
	app := loadedApp(t, check)

	assert.Equal(t, 1, check.inspects)
	require.NotNil(t, app.Report())
	assert.NoError(t, app.Err())

	view := app.View()
	assert.Contains(t, view, "docstyle review")
	assert.Contains(t, view, "paper.docx")
	assert.Contains(t, view, "Findings (3)")
	assert.Contains(t, view, "font-family")
	assert.Contains(t, view, "1 errors")
}

func TestApp_LoadError(t *testing.T) {
	check := &mockCheckService{err: domain.ErrCorruptDocument}
	app := loadedApp(t, check)

	assert.ErrorIs(t, app.Err(), domain.ErrCorruptDocument)
	assert.Nil(t, app.Report())
	assert.Contains(t, app.View(), "document corrupt")
}

func TestApp_Recheck(t *testing.T) {
	check := &mockCheckService{doc: sampleDocument(), report: sampleReport()}
	app := loadedApp(t, check)

	_, cmd := app.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.RecheckRequested{}, cmd())

	_, cmd = app.Update(messages.RecheckRequested{})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, 2, check.inspects)
}

func TestApp_RecheckClearsError(t *testing.T) {
	check := &mockCheckService{err: errors.New("locked")}
	app := loadedApp(t, check)
	require.Error(t, app.Err())

	check.err = nil
	check.doc, check.report = sampleDocument(), sampleReport()
	_, cmd := app.Update(messages.RecheckRequested{})
	app.Update(cmd())

	assert.NoError(t, app.Err())
	assert.NotNil(t, app.Report())
}

func TestApp_OpenFinding(t *testing.T) {
	app := loadedApp(t, &mockCheckService{doc: sampleDocument(), report: sampleReport()})

	// Move to the font-family finding and open it.
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	selected, ok := msg.(messages.FindingSelected)
	require.True(t, ok)
	assert.Equal(t, "font-family", selected.Finding.RuleID)

	app.Update(msg)
	assert.Equal(t, messages.ViewParagraph, app.CurrentView())
	require.NotNil(t, app.SelectedParagraph())
	assert.Equal(t, 1, app.SelectedParagraph().Index)
	assert.Contains(t, app.View(), "Title of the paper")

	// Esc returns to the table.
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, messages.ViewFindings, app.CurrentView())
}

func TestApp_OpenDocumentFinding(t *testing.T) {
	app := loadedApp(t, &mockCheckService{doc: sampleDocument(), report: sampleReport()})

	app.Update(messages.FindingSelected{Finding: sampleReport().Findings[2]})

	assert.Equal(t, messages.ViewParagraph, app.CurrentView())
	assert.Nil(t, app.SelectedParagraph())
	assert.Contains(t, app.View(), "whole document")
}

func TestApp_Help(t *testing.T) {
	app := loadedApp(t, &mockCheckService{doc: sampleDocument(), report: sampleReport()})

	app.Update(keyRunes("?"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "recheck")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewFindings, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"q", keyRunes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"quit message", messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := loadedApp(t, &mockCheckService{doc: sampleDocument(), report: sampleReport()})

			_, cmd := app.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := loadedApp(t, &mockCheckService{doc: sampleDocument(), report: sampleReport()})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "boom")
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Check: &mockCheckService{}}, "paper.docx")
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Checking document...")
}
