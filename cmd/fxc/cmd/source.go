package cmd

import (
	"fmt"
	"os"
)

// readSource loads the file named by args[0]. Stdin is not read: with no
// file given it returns an error.
func readSource(args []string) (source, name string, err error) {
	if len(args) == 0 {
		return "", "", fmt.Errorf("a source file is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
