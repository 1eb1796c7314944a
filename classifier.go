package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// countSLOC counts the non-blank, non-comment lines read from r using the
// comment tokens of the given dialect.
//
// The classifier is a two-state machine. Outside a block comment, a line is
// skipped when its trimmed form is empty, starts with the line-comment
// token, or starts with the block-open token (which also enters the block
// state). Inside a block comment every line is skipped until one contains
// the block-close token; that closing line never counts, even if code
// follows the token on the same line. The open transition deliberately does
// not look for a close token on the opening line, matching the historical
// behavior this tool reproduces.
func countSLOC(r io.Reader, d Dialect) (int, error) {
	sloc := 0
	inBlockComment := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			return 0, fmt.Errorf("input is not valid UTF-8")
		}
		stripped := strings.TrimSpace(string(line))

		if inBlockComment {
			if d.BlockClose != "" && strings.Contains(stripped, d.BlockClose) {
				inBlockComment = false
			}
			continue
		}

		if stripped == "" || (d.Line != "" && strings.HasPrefix(stripped, d.Line)) {
			continue
		}

		// Empty block tokens mean the dialect has no block comments.
		if d.BlockOpen != "" && strings.HasPrefix(stripped, d.BlockOpen) {
			inBlockComment = true
			continue
		}

		sloc++
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}
	return sloc, nil
}
