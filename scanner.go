package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// scanOptions carries the walker configuration for one run.
type scanOptions struct {
	Suffix       string
	Excludes     []string
	ShowHidden   bool
	NoIgnore     bool
	MaxDepth     int
	MaxSizeBytes int64
	Dialects     *LoadedDialects
}

// scanPath handles a single local file or directory path.
func scanPath(path string, opts scanOptions) ([]FileCount, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if info.IsDir() {
		return scanTree(path, opts)
	}

	// Single file: the suffix filter still applies.
	if !strings.HasSuffix(info.Name(), opts.Suffix) {
		fmt.Fprintf(os.Stderr, "Skipping %s: name does not end with %s\n", path, opts.Suffix)
		return nil, nil
	}
	result, err := classifyFile(path, info.Size(), opts)
	if err != nil {
		return nil, err
	}
	return []FileCount{result}, nil
}

// parsePatterns splits a comma-separated string of patterns into a slice.
func parsePatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	return strings.Split(patterns, ",")
}

// matchesAnyPattern checks if the given name matches any of the provided glob patterns.
func matchesAnyPattern(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// scanTree recursively walks a directory, classifying every file whose name
// ends with the configured suffix. Results keep traversal order. A file
// that cannot be read or decoded aborts the whole scan; errors merely
// enumerating directory entries are reported and skipped.
func scanTree(root string, opts scanOptions) ([]FileCount, error) {
	var results []FileCount
	var ignoreMatcher gitignore.IgnoreMatcher

	if !opts.NoIgnore {
		// go-gitignore matches against a single .gitignore at the root.
		// Nested ignore files are not consulted.
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse .gitignore file %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing path %s: %v\n", path, err)
			return nil // Report and continue
		}

		// Skip root directory itself
		if path == root {
			return nil
		}

		baseName := d.Name()
		isDir := d.IsDir()

		// 1. Hidden files/dirs
		if !opts.ShowHidden && isHidden(baseName) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		// 2. .gitignore (Match relativizes against the .gitignore location)
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		// 3. Max depth
		relPath, _ := filepath.Rel(root, path)
		if opts.MaxDepth > 0 && countPathSeparators(relPath) >= opts.MaxDepth {
			if isDir {
				return fs.SkipDir
			}
		}

		// 4. Exclude patterns (directories are skipped wholesale)
		excluded, err := matchesAnyPattern(baseName, opts.Excludes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error in exclude pattern matching for %s: %v\n", path, err)
		}
		if excluded {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir {
			return nil // Allow traversal of non-excluded directories
		}

		// 5. Suffix filter
		if !strings.HasSuffix(baseName, opts.Suffix) {
			return nil
		}

		// 6. Max size
		info, err := d.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not get info for %s: %v\n", path, err)
			return nil // Skip file if info error
		}
		if opts.MaxSizeBytes > 0 && info.Size() > opts.MaxSizeBytes {
			return nil
		}

		result, err := classifyFile(path, info.Size(), opts)
		if err != nil {
			return err // Decode/read failures abort the scan
		}
		results = append(results, result)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}

	return results, nil
}

// classifyFile opens one source file, counts its SLOC, and closes it before
// returning. The dialect is resolved from the file suffix, falling back to
// the built-in C-family tokens for suffixes configured via --suffix but
// absent from the dialect table.
func classifyFile(path string, size int64, opts scanOptions) (FileCount, error) {
	dialect, ok := opts.Dialects.DialectForSuffix(filepath.Ext(path))
	if !ok {
		dialect = cFamily
	}

	f, err := os.Open(path)
	if err != nil {
		return FileCount{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	sloc, err := countSLOC(f, dialect)
	if err != nil {
		return FileCount{}, fmt.Errorf("error classifying %s: %w", path, err)
	}

	return FileCount{Path: path, SLOC: sloc, Size: size}, nil
}

// isHidden checks if a file path is hidden (starts with '.').
func isHidden(path string) bool {
	if path == "." || path == ".." {
		return false
	}
	baseName := filepath.Base(path)
	return len(baseName) > 0 && baseName[0] == '.'
}

// countPathSeparators counts the number of path separators in a relative path.
func countPathSeparators(path string) int {
	path = filepath.ToSlash(path)
	if path == "." || path == "" {
		return 0
	}
	return strings.Count(strings.Trim(path, "/"), "/")
}
