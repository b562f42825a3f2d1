package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/mcp"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

var (
	mcpPort  int
	mcpStyle string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server so assistants can check
documents, list the rules and read past runs.

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, for example to test with MCP Inspector.

Examples:
  docstyle mcp serve
  docstyle mcp serve --port 8080 --style conference-a5

Client configuration:
  {
    "mcpServers": {
      "docstyle": {
        "command": "/path/to/docstyle",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVarP(&mcpStyle, "style", "s", "", "house-style profile name or file")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireChecks(); err != nil {
		return err
	}
	svc, err := checkFactory.New(driving.CheckConfig{Style: mcpStyle})
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Check:   svc,
		History: historyService,
	})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
