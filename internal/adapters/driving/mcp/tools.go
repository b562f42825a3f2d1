package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// CheckInput is the input schema for the check_document tool.
type CheckInput struct {
	Path     string `json:"path" jsonschema:"path of the .docx file to check"`
	Annotate bool   `json:"annotate,omitempty" jsonschema:"write an annotated copy next to the file"`
	Suffix   string `json:"suffix,omitempty" jsonschema:"suffix for the annotated copy (default _annotated)"`
}

// CheckOutput is the output schema for the check_document tool.
type CheckOutput struct {
	File          string          `json:"file"`
	Status        string          `json:"status"`
	Summary       string          `json:"summary"`
	RunID         string          `json:"run_id,omitempty"`
	AnnotatedPath string          `json:"annotated_path,omitempty"`
	Findings      []domain.Record `json:"findings"`
}

// RulesInput is the (empty) input schema for the list_rules tool.
type RulesInput struct{}

// RulesOutput is the output schema for the list_rules tool.
type RulesOutput struct {
	Style string            `json:"style"`
	Rules []domain.RuleInfo `json:"rules"`
	Count int               `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_document",
		Description: "Check a .docx manuscript against the house style and list the findings",
	}, s.handleCheck)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the house-style rules and whether each is enabled",
	}, s.handleListRules)
}

// handleCheck handles the check_document tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	if input.Path == "" {
		return nil, CheckOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	result := s.ports.Check.Check(ctx, input.Path, driving.CheckOptions{
		Annotate: input.Annotate,
		Suffix:   input.Suffix,
		Record:   true,
	})
	if result.Err != nil {
		return nil, CheckOutput{}, fmt.Errorf("checking %s: %w", input.Path, result.Err)
	}

	output := CheckOutput{
		File:          input.Path,
		Status:        string(result.Status()),
		Summary:       result.Run.Report.Summary(),
		RunID:         result.Run.ID,
		AnnotatedPath: result.Run.AnnotatedPath,
		Findings:      result.Records(),
	}
	if result.AnnotateErr != nil {
		return nil, output, fmt.Errorf("annotating %s: %w", input.Path, result.AnnotateErr)
	}
	return nil, output, nil
}

// handleListRules handles the list_rules tool invocation.
func (s *Server) handleListRules(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ RulesInput,
) (*mcp.CallToolResult, RulesOutput, error) {
	rules := s.ports.Check.Rules()
	return nil, RulesOutput{
		Style: s.ports.Check.Style().Name,
		Rules: rules,
		Count: len(rules),
	}, nil
}
