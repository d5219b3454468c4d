package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/txus/parslet/markdownspan"
)

// BlocksCmd represents the blocks command
type BlocksCmd struct {
	File   string `arg:"" help:"Markdown file" type:"path"`
	Lang   string `help:"Only report blocks with this language"`
	Format string `help:"Output format (table, json, csv, yaml)" default:"table"`
	Output string `short:"o" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the blocks command
func (cmd *BlocksCmd) Run(ctx *Context) error {
	if !IsValidOutputFormat(cmd.Format) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, cmd.Format)
	}

	if !fileExists(cmd.File) {
		return fmt.Errorf("%w: %s", ErrInputFileNotExist, cmd.File)
	}

	file, err := os.Open(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := markdownspan.Extract(file)
	if err != nil {
		return fmt.Errorf("failed to extract code blocks: %w", err)
	}

	lang := strings.ToLower(cmd.Lang)

	result := &Result{
		Columns: []string{"language", "offset", "length", "text"},
	}

	for _, block := range doc.Blocks {
		if lang != "" && block.Language != lang {
			continue
		}

		if block.Body == nil {
			continue
		}

		result.Rows = append(result.Rows, []any{
			block.Language, block.Body.Offset(), block.Body.Len(), block.Text,
		})
	}

	if ctx.Verbose {
		color.Green("%d block(s) in %s", len(result.Rows), cmd.File)
	}

	return writeResult(cmd.Format, cmd.Output, result)
}
