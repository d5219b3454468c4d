package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"

	"github.com/txus/parslet"
)

// GrepCmd represents the grep command
type GrepCmd struct {
	File    string `arg:"" help:"Input file" type:"path"`
	Pattern string `arg:"" help:"Regular expression to search for"`
	Group   int    `short:"g" help:"Capture group to report" default:"0"`
	Limit   int    `help:"Stop after this many matches (0 means no limit)" default:"0"`
	Count   bool   `short:"c" help:"Print only the number of matches"`
	Format  string `help:"Output format (table, json, csv, yaml)" default:"table"`
	Output  string `short:"o" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the grep command
func (cmd *GrepCmd) Run(ctx *Context) error {
	if !IsValidOutputFormat(cmd.Format) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, cmd.Format)
	}

	re, err := regexp.Compile(cmd.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	if cmd.Group < 0 || cmd.Group > re.NumSubexp() {
		return fmt.Errorf("%w: pattern has %d group(s)", ErrNoSuchGroup, re.NumSubexp())
	}

	if !fileExists(cmd.File) {
		return fmt.Errorf("%w: %s", ErrInputFileNotExist, cmd.File)
	}

	content, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if ctx.Verbose {
		color.Blue("Matching %s against %s", cmd.Pattern, cmd.File)
	}

	root := parslet.New(string(content), 0)

	limit := cmd.Limit
	if limit <= 0 {
		limit = -1
	}

	result := &Result{
		Columns: []string{"offset", "length", "text"},
	}

	for _, match := range re.FindAllStringSubmatchIndex(root.String(), limit) {
		lo, hi := match[2*cmd.Group], match[2*cmd.Group+1]
		if lo < 0 {
			// The group did not participate in this match
			continue
		}

		span := root.AbsSlice(lo, hi-lo)
		result.Rows = append(result.Rows, []any{span.Offset(), span.Len(), span.String()})
	}

	if cmd.Count {
		fmt.Println(len(result.Rows))
		return nil
	}

	if ctx.Verbose {
		color.Green("%d match(es)", len(result.Rows))
	}

	return writeResult(cmd.Format, cmd.Output, result)
}
