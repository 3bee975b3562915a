package cmd

import (
	"github.com/mj1618/wintitle/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing wintitle tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the serialize,
compose_title and decode tools. AI agents can call tools directly without
shell overhead.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  wintitle serve
  wintitle serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		Transport: stringFlagOr(cmd, "transport", appConfig.Serve.Transport),
		Port:      appConfig.Serve.Port,
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	return server.New(appLog).Serve(cfg)
}
