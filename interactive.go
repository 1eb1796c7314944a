package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// promptForRoot asks for the root directory on stdout and reads one line
// from r. Used when no path argument is given.
func promptForRoot(r io.Reader) (string, error) {
	fmt.Print("Enter the directory path to scan: ")
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading directory path: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no directory path entered")
	}
	return line, nil
}

// runInteractiveFinder walks the current directory and lets the user pick
// the scan root with a fuzzy finder. Returns "" with a nil error when the
// user aborts the selection.
func runInteractiveFinder(showHidden bool) (string, error) {
	candidates := []string{"."}
	root := "."

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Continue walking
		}
		if path == root {
			return nil
		}
		if !showHidden && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to scan. Enter to confirm."
			}
			path := candidates[i]
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError reading directory: %v", path, readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", path, len(entries))
		}),
	)

	if err != nil {
		if err == fuzzyfinder.ErrAbort { // User pressed Esc or Ctrl+C
			fmt.Fprintln(os.Stderr, "Interactive selection aborted.")
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}
