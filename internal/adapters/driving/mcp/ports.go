package mcp

import (
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Check runs the house-style check.
	Check driving.CheckService

	// History reads recorded runs. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Check == nil {
		return ErrMissingCheckService
	}
	return nil
}
