package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dialect describes the comment tokens recognized for a family of source
// files. The classifier only understands a single-line marker plus one
// block open/close pair.
type Dialect struct {
	Name       string   `yaml:"-"`
	Line       string   `yaml:"line"`
	BlockOpen  string   `yaml:"block_open"`
	BlockClose string   `yaml:"block_close"`
	Suffixes   []string `yaml:"suffixes"`
}

// DialectMap maps dialect names (e.g., "c-family") to their definitions.
type DialectMap map[string]Dialect

// LoadedDialects holds the parsed dialect map and a suffix lookup index.
type LoadedDialects struct {
	Dialects  DialectMap
	suffixMap map[string]string // Map suffix (e.g., ".cs") to dialect name
}

// cFamily is the built-in dialect. The .cs suffix is the scanner default;
// the other suffixes share the exact same comment grammar.
var cFamily = Dialect{
	Name:       "c-family",
	Line:       "//",
	BlockOpen:  "/*",
	BlockClose: "*/",
	Suffixes:   []string{".cs", ".c", ".h", ".cpp", ".hpp", ".java", ".go", ".js", ".ts"},
}

// builtinDialects returns the dialect set shipped with the binary.
func builtinDialects() *LoadedDialects {
	d := &LoadedDialects{
		Dialects:  DialectMap{cFamily.Name: cFamily},
		suffixMap: make(map[string]string),
	}
	for _, suffix := range cFamily.Suffixes {
		d.suffixMap[strings.ToLower(suffix)] = cFamily.Name
	}
	return d
}

// loadDialects returns the built-in dialects, merged with an optional
// dialects.yml found in the standard config locations. Entries in the file
// override built-ins of the same name.
func loadDialects() (*LoadedDialects, error) {
	data := builtinDialects()

	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "slocat"))
	}
	configPaths = append(configPaths, ".") // Current directory

	var dialectFilePath string
	for _, p := range configPaths {
		testPath := filepath.Join(p, "dialects.yml")
		if _, err := os.Stat(testPath); err == nil {
			dialectFilePath = testPath
			break
		}
	}

	if dialectFilePath == "" {
		return data, nil // Built-ins only
	}

	yamlFile, err := os.ReadFile(dialectFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading dialect file %s: %w", dialectFilePath, err)
	}

	var extra DialectMap
	if err := yaml.Unmarshal(yamlFile, &extra); err != nil {
		return nil, fmt.Errorf("error parsing dialect file %s: %w", dialectFilePath, err)
	}

	for name, dialect := range extra {
		dialect.Name = name
		data.Dialects[name] = dialect
		for _, suffix := range dialect.Suffixes {
			// File entries win over built-in suffix claims.
			data.suffixMap[strings.ToLower(suffix)] = name
		}
	}

	fmt.Fprintf(os.Stderr, "Loaded %d extra dialect(s) from %s\n", len(extra), dialectFilePath)
	return data, nil
}

// DialectForSuffix resolves the dialect registered for a file suffix.
func (ld *LoadedDialects) DialectForSuffix(suffix string) (Dialect, bool) {
	if ld == nil {
		return Dialect{}, false
	}
	name, ok := ld.suffixMap[strings.ToLower(suffix)]
	if !ok {
		return Dialect{}, false
	}
	return ld.Dialects[name], true
}
