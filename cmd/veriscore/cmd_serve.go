package main

import (
	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"veriscore/internal/logging"
	"veriscore/internal/scoremcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server on stdin/stdout exposing the scoring tools
(list_scorers, score_series, score_dataset) to agent clients.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := scoremcp.NewServer(version)
	logging.New("serve").Info("starting veriscore MCP server over stdio")
	return srv.MCPServer.Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
