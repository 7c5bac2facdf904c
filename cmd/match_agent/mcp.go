package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/mcptools"
	"github.com/jonathan/candidate-matcher/internal/parsing"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the scoring tools over MCP on stdio",
	RunE: func(cmd *cobra.Command, _ []string) error {
		server := mcptools.NewServer(version, parsing.DefaultNormalizer())
		log.Info("serving MCP on stdio")
		return server.Run(commandContext(cmd), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
