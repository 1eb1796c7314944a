package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL checks if the input string looks like a Git repository URL.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@") // Common SSH format
}

// cloneGitRepo clones a Git repository URL into a temporary directory so the
// tree can be scanned like any local path. It returns the path to the
// temporary directory; the caller is responsible for removing it.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "slocat-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning Git repository '%s' into '%s'...\n", url, tempDir)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      os.Stderr,
		Depth:         1, // History is irrelevant for line counting
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})

	if err != nil {
		// Attempt cleanup even if clone failed
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}

	return tempDir, nil
}
