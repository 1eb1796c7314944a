package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinDialectLookup(t *testing.T) {
	d := builtinDialects()

	dialect, ok := d.DialectForSuffix(".cs")
	require.True(t, ok)
	require.Equal(t, "c-family", dialect.Name)
	require.Equal(t, "//", dialect.Line)
	require.Equal(t, "/*", dialect.BlockOpen)
	require.Equal(t, "*/", dialect.BlockClose)

	_, ok = d.DialectForSuffix(".py")
	require.False(t, ok)
}

func TestDialectLookupCaseInsensitive(t *testing.T) {
	d := builtinDialects()

	dialect, ok := d.DialectForSuffix(".CS")
	require.True(t, ok)
	require.Equal(t, "c-family", dialect.Name)
}

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup. It mirrors t.Chdir,
// which requires Go 1.24's testing package.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoadDialectsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	d, err := loadDialects()
	require.NoError(t, err)

	_, ok := d.DialectForSuffix(".cs")
	require.True(t, ok)
}

func TestLoadDialectsMergesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	yml := `
hash:
  line: "#"
  suffixes: [".py", ".rb"]
c-family:
  line: "//"
  block_open: "/*"
  block_close: "*/"
  suffixes: [".cs", ".kt"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dialects.yml"), []byte(yml), 0644))
	chdir(t, dir)

	d, err := loadDialects()
	require.NoError(t, err)

	dialect, ok := d.DialectForSuffix(".py")
	require.True(t, ok)
	require.Equal(t, "hash", dialect.Name)
	require.Equal(t, "#", dialect.Line)
	require.Empty(t, dialect.BlockOpen)

	dialect, ok = d.DialectForSuffix(".kt")
	require.True(t, ok)
	require.Equal(t, "c-family", dialect.Name)
}

func TestLoadDialectsRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dialects.yml"), []byte("hash: [unclosed"), 0644))
	chdir(t, dir)

	_, err := loadDialects()
	require.Error(t, err)
}

func TestClassifyWithLineOnlyDialect(t *testing.T) {
	hash := Dialect{Name: "hash", Line: "#"}
	input := "# comment\nx = 1\n\ny = 2\n"

	n, err := countSLOC(strings.NewReader(input), hash)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
