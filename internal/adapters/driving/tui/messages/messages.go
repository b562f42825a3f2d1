// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// ReportLoaded carries the evaluated document back to the model.
type ReportLoaded struct {
	Document *domain.Document
	Report   *domain.Report
	Err      error
}

// RecheckRequested asks the app to reload and re-evaluate the document.
type RecheckRequested struct{}

// FindingSelected is sent when a finding is opened from the table.
type FindingSelected struct {
	Finding domain.Finding
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFindings is the findings table.
	ViewFindings ViewType = iota
	// ViewParagraph shows one finding with its paragraph.
	ViewParagraph
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFindings:
		return "findings"
	case ViewParagraph:
		return "paragraph"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
