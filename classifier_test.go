package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func count(t *testing.T, input string) int {
	t.Helper()
	n, err := countSLOC(strings.NewReader(input), cFamily)
	require.NoError(t, err)
	return n
}

func TestCountSLOCEmptyInput(t *testing.T) {
	require.Equal(t, 0, count(t, ""))
}

func TestCountSLOCOnlyBlankAndLineComments(t *testing.T) {
	input := "\n   \n// comment\n\t// indented comment\n\n"
	require.Equal(t, 0, count(t, input))
}

func TestCountSLOCBlockCommentSpansLines(t *testing.T) {
	input := "/* opening\nmiddle line\nstill comment\nclosing */\n"
	require.Equal(t, 0, count(t, input))
}

func TestCountSLOCInterleavedComments(t *testing.T) {
	input := "int a;\n// note\nint b;\n\nint c;\n"
	require.Equal(t, 3, count(t, input))
}

func TestCountSLOCCSharpScenario(t *testing.T) {
	input := `// header comment
using System;

/* block
   comment */
class A {
    int x = 1;
}
`
	require.Equal(t, 4, count(t, input))
}

func TestCountSLOCCodeAfterBlockCloseIgnored(t *testing.T) {
	// The closing line never counts, even when code follows the token.
	input := "/* comment\nend */ doSomething();\nint x;\n"
	require.Equal(t, 1, count(t, input))
}

func TestCountSLOCSingleLineBlockStaysOpen(t *testing.T) {
	// The open transition does not look for a close token on the same
	// line, so a one-line block comment swallows the following lines
	// until another close token appears.
	input := "/* one line */\nint hidden;\nstill hidden */\nint visible;\n"
	require.Equal(t, 1, count(t, input))
}

func TestCountSLOCTrimsWhitespaceBeforeTokenCheck(t *testing.T) {
	input := "   // indented line comment\n\t/* indented block\n*/\n   int x;\n"
	require.Equal(t, 1, count(t, input))
}

func TestCountSLOCMidLineCommentStillCounts(t *testing.T) {
	// Tokens not at the start of the trimmed line do not classify the line.
	input := "int x; // trailing comment\nint y; /* trailing block */\n"
	require.Equal(t, 2, count(t, input))
}

func TestCountSLOCInvalidUTF8(t *testing.T) {
	_, err := countSLOC(strings.NewReader("int x;\n\xff\xfe\n"), cFamily)
	require.Error(t, err)
	require.Contains(t, err.Error(), "UTF-8")
}

func TestCountSLOCNoTrailingNewline(t *testing.T) {
	require.Equal(t, 1, count(t, "int x;"))
}
