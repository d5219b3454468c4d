package markdownspan

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/txus/parslet"
)

// Document is the result of extracting code spans from a markdown buffer.
type Document struct {
	// Root covers the whole markdown input; every block span is carved
	// from it.
	Root *parslet.Slice
	// Blocks are the code blocks in document order.
	Blocks []Block
}

// Block is one code block together with its position in the buffer.
type Block struct {
	// Language is the lowercased fence info string, "" for indented
	// blocks and bare fences.
	Language string
	// Info is the span of the fence info string, nil when there is none.
	Info *parslet.Slice
	// Body is the span of the block content. For fenced blocks the lines
	// are adjacent in the buffer and Body is their merged span, still
	// rooted at the document root. Indented blocks strip the leading
	// indent from each line, so their lines are not adjacent; Body then
	// covers the raw source range from the first line to the last,
	// indentation included. Nil for empty blocks.
	Body *parslet.Slice
	// Text is the logical content: the line payloads joined, without the
	// trailing newline. This is the string to hand to whatever parses
	// the embedded code.
	Text string
}

// Extract parses markdown from r and returns the code blocks it contains
// as position-tracking slices of the input.
func Extract(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return ExtractString(string(content))
}

// ExtractString is Extract over an in-memory buffer.
func ExtractString(content string) (*Document, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	node := md.Parser().Parse(text.NewReader([]byte(content)))

	doc := &Document{
		Root: parslet.New(content, 0),
	}

	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch block := n.(type) {
		case *ast.FencedCodeBlock:
			b := buildBlock(doc.Root, block.Lines())
			if block.Info != nil {
				segment := block.Info.Segment
				b.Info = doc.Root.AbsSlice(segment.Start, segment.Len())
				b.Language = strings.TrimSpace(strings.ToLower(b.Info.String()))
			}

			doc.Blocks = append(doc.Blocks, b)
		case *ast.CodeBlock:
			doc.Blocks = append(doc.Blocks, buildBlock(doc.Root, block.Lines()))
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// buildBlock merges the line segments of a code block into one span.
// Adjacent lines are concatenated so the merged span stays rooted at the
// original buffer; once a gap shows up the span falls back to the raw
// source range covering all lines.
func buildBlock(root *parslet.Slice, lines *text.Segments) Block {
	var block Block
	if lines == nil || lines.Len() == 0 {
		return block
	}

	first := lines.At(0)
	body := root.AbsSlice(first.Start, first.Len())

	var payload strings.Builder
	payload.WriteString(body.String())

	contiguous := true

	for i := 1; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := root.AbsSlice(segment.Start, segment.Len())
		payload.WriteString(line.String())

		if contiguous {
			merged, err := body.Concat(line)
			if err != nil {
				contiguous = false
			} else {
				body = merged
			}
		}
	}

	if !contiguous {
		last := lines.At(lines.Len() - 1)
		body = root.AbsSlice(first.Start, last.Stop-first.Start)
	}

	block.Body = body
	block.Text = strings.TrimRight(payload.String(), "\n")

	return block
}
