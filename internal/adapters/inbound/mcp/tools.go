package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yaraqc/yaraqc/internal/adapters/outbound/compiler"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/config"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/gitinfo"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/scanner"
	"github.com/yaraqc/yaraqc/internal/application"
	"github.com/yaraqc/yaraqc/internal/domain"
	"github.com/yaraqc/yaraqc/internal/domain/atoms"
	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

// registerTools registers all yaraqc MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. yaraqc_lint
	s.AddTool(
		mcplib.NewTool("yaraqc_lint",
			mcplib.WithDescription("Run the full style/compatibility check catalog over the project's rule files and return the report as JSON"),
		),
		handleLint(projectPath),
	)

	// 2. yaraqc_lint_file
	s.AddTool(
		mcplib.NewTool("yaraqc_lint_file",
			mcplib.WithDescription("Lint a single rule file and return its issues"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the rule file to lint"),
			),
		),
		handleLintFile(projectPath),
	)

	// 3. yaraqc_score_atom
	s.AddTool(
		mcplib.NewTool("yaraqc_score_atom",
			mcplib.WithDescription("Decode a hex pattern and return its best 4-byte atom and score"),
			mcplib.WithString("pattern",
				mcplib.Required(),
				mcplib.Description("Hex pattern tokens, e.g. \"4D 5A ?? 00\""),
			),
		),
		handleScoreAtom(),
	)

	// 4. yaraqc_list_checks
	s.AddTool(
		mcplib.NewTool("yaraqc_list_checks",
			mcplib.WithDescription("List every check code the engines can emit"),
		),
		handleListChecks(),
	)
}

func newService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		compiler.New(),
		config.New(),
		gitinfo.New(),
	)
}

func handleLint(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newService().AnalyzePaths(projectPath, []string{projectPath}, application.ModeLint)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLintFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := newService().AnalyzeFile(projectPath, file, application.ModeLint)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleScoreAtom() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pattern, err := request.RequireString("pattern")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		decoded := rulesrc.DecodeHex(pattern)
		scorer := atoms.NewScorer(atoms.DefaultConfig())
		atom, ok := scorer.Best(decoded.Bytes, decoded.Wildcards)
		if !ok {
			return errorResult(fmt.Sprintf("no scorable atom: %d concrete bytes", decoded.ConcreteBytes())), nil
		}
		return jsonResult(atom)
	}
}

func handleListChecks() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.ValidCheckCodes)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
