// Package tui provides the interactive findings browser for docstyle review.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Check loads and evaluates the reviewed document.
	Check driving.CheckService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Check == nil {
		return ErrMissingCheckService
	}
	return nil
}
