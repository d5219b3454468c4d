package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/txus/parslet"
)

// SliceCmd represents the slice command
type SliceCmd struct {
	File   string `arg:"" help:"Input file" type:"path"`
	Offset int    `arg:"" help:"Byte offset of the span"`
	Length int    `arg:"" help:"Length of the span in bytes"`
	Format string `help:"Output format (table, json, csv, yaml)" default:"table"`
	Output string `short:"o" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the slice command
func (cmd *SliceCmd) Run(ctx *Context) error {
	if !IsValidOutputFormat(cmd.Format) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, cmd.Format)
	}

	if cmd.Offset < 0 || cmd.Length < 0 {
		return fmt.Errorf("%w: offset %d and length %d must not be negative",
			ErrSpanOutOfRange, cmd.Offset, cmd.Length)
	}

	if !fileExists(cmd.File) {
		return fmt.Errorf("%w: %s", ErrInputFileNotExist, cmd.File)
	}

	content, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	root := parslet.New(string(content), 0)

	if !root.Satisfies(cmd.Offset, cmd.Length) {
		return fmt.Errorf("%w: span %d+%d is outside the %d byte input",
			ErrSpanOutOfRange, cmd.Offset, cmd.Length, root.Len())
	}

	span := root.AbsSlice(cmd.Offset, cmd.Length)

	if ctx.Verbose {
		color.Blue("Carved %s from %s", span.GoString(), cmd.File)
	}

	result := &Result{
		Columns: []string{"offset", "length", "text"},
		Rows: [][]any{
			{span.Offset(), span.Len(), span.String()},
		},
	}

	return writeResult(cmd.Format, cmd.Output, result)
}
