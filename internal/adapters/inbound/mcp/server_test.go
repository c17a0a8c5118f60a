package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/yaraqc/yaraqc/internal/adapters/inbound/mcp"
)

func TestNewYaraQCMCPServer(t *testing.T) {
	s := mcpadapter.NewYaraQCMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewYaraQCMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"yaraqc_lint",
		"yaraqc_lint_file",
		"yaraqc_score_atom",
		"yaraqc_list_checks",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
