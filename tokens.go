package main

import (
	"fmt"
	"os"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

const defaultTokenModel = "gpt-4o"

// tokenCounter wraps a tiktoken encoding for the optional token column.
type tokenCounter struct {
	ttk *tiktoken.Tiktoken
}

// newTokenCounter resolves the encoding for the requested model, falling
// back to the default model if the requested one is unknown.
func newTokenCounter(model string) (*tokenCounter, error) {
	if model == "" {
		model = defaultTokenModel
	}

	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tiktoken model '%s' not found, falling back to '%s'. Error: %v\n", model, defaultTokenModel, err)
		tke, err = tiktoken.EncodingForModel(defaultTokenModel)
		if err != nil {
			return nil, fmt.Errorf("failed to get tiktoken encoding for default model '%s': %w", defaultTokenModel, err)
		}
	}
	return &tokenCounter{ttk: tke}, nil
}

func (c *tokenCounter) CountTokens(text string) int {
	if c == nil || c.ttk == nil {
		return 0
	}
	return len(c.ttk.EncodeOrdinary(text))
}

// countFileTokens fills in the Tokens field for every result, reading each
// file a second time. Runs in the caller's goroutine; there is no worker
// pool here, the scan is deliberately sequential.
func countFileTokens(results []FileCount, counter *tokenCounter) {
	for i := range results {
		content, err := os.ReadFile(results[i].Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not re-read %s for token counting: %v\n", results[i].Path, err)
			continue
		}
		results[i].Tokens = counter.CountTokens(string(content))
	}
}
