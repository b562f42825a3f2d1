// Package mcp provides an MCP (Model Context Protocol) server adapter for docstyle.
// It lets AI assistants check manuscripts against the house style and read
// recorded check runs.
package mcp

import "errors"

// ErrMissingCheckService is returned when the check service is not provided.
var ErrMissingCheckService = errors.New("mcp: check service is required")
