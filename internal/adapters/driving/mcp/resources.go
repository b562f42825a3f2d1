package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docstyle resources.
	uriScheme = "docstyle://"

	// historyLimit bounds the runs listed by the history resource.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "style",
		Name:        "style",
		Description: "The active house-style profile",
		MIMEType:    "application/json",
	}, s.handleStyleResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent check runs, most recent first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "One recorded check run with its full report",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleStyleResource returns the active house style.
func (s *Server) handleStyleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Check.Style())
}

// handleRunsResource returns recent runs without their reports.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, []struct{}{})
	}

	runs, err := s.ports.History.List(ctx, historyLimit)
	if errors.Is(err, domain.ErrHistoryDisabled) {
		return jsonResource(req.Params.URI, []struct{}{})
	}
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	type runInfo struct {
		ID        string `json:"id"`
		Path      string `json:"path"`
		Status    string `json:"status"`
		Summary   string `json:"summary"`
		CheckedAt string `json:"checked_at"`
	}

	infos := make([]runInfo, len(runs))
	for i := range runs {
		infos[i] = runInfo{
			ID:        runs[i].ID,
			Path:      runs[i].Path,
			Status:    string(runs[i].Status),
			Summary:   runs[i].Report.Summary(),
			CheckedAt: runs[i].CheckedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleRunResource returns one run with its report.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.History.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHistoryDisabled) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return jsonResource(req.Params.URI, run)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like docstyle://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
