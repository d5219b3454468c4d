package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// writeResult formats result and writes it to path, or to stdout when
// path is empty
func writeResult(format string, path string, result *Result) error {
	var output io.Writer = os.Stdout

	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutputFileCreation, err)
		}
		defer file.Close()

		output = file
	}

	return NewFormatter(OutputFormat(strings.ToLower(format))).Write(result, output)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
