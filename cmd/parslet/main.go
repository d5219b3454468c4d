package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context represents the global context for commands
type Context struct {
	Verbose bool
	Quiet   bool
}

// CLI represents the command-line interface
var CLI struct {
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	NoColor bool       `help:"Disable colored output"`
	Slice   SliceCmd   `cmd:"" help:"Carve a byte span out of a file"`
	Grep    GrepCmd    `cmd:"" help:"Report regexp matches with their positions"`
	Blocks  BlocksCmd  `cmd:"" help:"List markdown code blocks with their positions"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("parslet v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	if CLI.NoColor {
		color.NoColor = true
	}

	appCtx := &Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
