package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaraqc/yaraqc/internal/adapters/inbound/cli"
	"github.com/yaraqc/yaraqc/internal/domain"
)

const (
	goodFixture = "../../../../testdata/rules/good.yar"
	badFixture  = "../../../../testdata/rules/bad.yar"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLintCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "lint", badFixture, "--json")
	require.NoError(t, err)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)

	codes := map[string]bool{}
	for _, issue := range report.Results[0].Issues {
		codes[issue.Code] = true
	}
	for _, want := range []string{
		"name-parts", "desc-detects", "desc-short",
		"meta-author", "meta-date", "meta-reference",
		"str-short", "str-common",
		"hex-few-bytes", "hex-leading-wildcard", "re-unbounded",
		"cond-deprecated", "cond-negative-index",
	} {
		assert.True(t, codes[want], "expected issue %q", want)
	}
}

func TestLintCommand_CleanFixture(t *testing.T) {
	out, err := runCommand(t, "lint", goodFixture, "--json")
	require.NoError(t, err)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.Empty(t, report.Results[0].Issues)
	assert.Zero(t, report.Errors)
}

func TestLintCommand_CIFailsOnErrors(t *testing.T) {
	_, err := runCommand(t, "lint", badFixture, "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errors found")
}

func TestLintCommand_CIPassesOnClean(t *testing.T) {
	_, err := runCommand(t, "lint", goodFixture, "--ci")
	assert.NoError(t, err)
}

func TestLintCommand_DefaultTUI(t *testing.T) {
	out, err := runCommand(t, "lint", badFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "yaraqc")
	assert.Contains(t, out, "bad.yar")
	assert.Contains(t, out, "[cond-negative-index]")
}

func TestLintCommand_MissingPath(t *testing.T) {
	_, err := runCommand(t, "lint", "does-not-exist.yar")
	assert.Error(t, err)
}
