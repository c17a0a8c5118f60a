package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewYaraQCMCPServer creates a new MCP server with all yaraqc tools
// registered. The projectPath is the root directory whose config and rule
// files are analyzed.
func NewYaraQCMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"yaraqc",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
