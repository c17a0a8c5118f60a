package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaraqc/yaraqc/internal/adapters/outbound/scanner"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("rule T_E_S_T { condition: true }"), 0o644))
	return path
}

func TestScan_PicksUpRuleExtensions(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yar")
	b := writeFile(t, dir, "sub/b.yara")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "c.YAR") // extension match is case-insensitive

	files, err := scanner.New().Scan([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b, filepath.Join(dir, "c.YAR")}, files)
}

func TestScan_ExplicitFileAlwaysIncluded(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "rules.txt")

	files, err := scanner.New().Scan([]string{txt})
	require.NoError(t, err)
	assert.Equal(t, []string{txt}, files)
}

func TestScan_SkipsVendorAndGitDirs(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.yar")
	writeFile(t, dir, ".git/objects/x.yar")
	writeFile(t, dir, "vendor/dep/y.yar")
	writeFile(t, dir, "node_modules/z.yar")

	files, err := scanner.New().Scan([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestScan_ExcludePaths(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.yar")
	writeFile(t, dir, "archive/old.yar")

	files, err := scanner.New().Scan([]string{dir}, "archive/")
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestScan_MissingPathFails(t *testing.T) {
	_, err := scanner.New().Scan([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestRead_ReturnsContents(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.yar")

	data, err := scanner.New().Read(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
