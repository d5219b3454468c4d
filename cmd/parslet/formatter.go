package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/width"
)

// OutputFormat represents the supported output formats
type OutputFormat string

// Supported output formats
const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
	FormatYAML  OutputFormat = "yaml"
)

// IsValidOutputFormat checks if the output format is valid
func IsValidOutputFormat(format string) bool {
	f := OutputFormat(strings.ToLower(format))
	return f == FormatTable || f == FormatJSON || f == FormatCSV || f == FormatYAML
}

// Result holds the rows produced by a command
type Result struct {
	Columns []string
	Rows    [][]any
}

// Formatter formats command results
type Formatter struct {
	Format OutputFormat
}

// NewFormatter creates a new result formatter
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{
		Format: format,
	}
}

// Write formats the result according to the configured format
func (f *Formatter) Write(result *Result, output io.Writer) error {
	switch f.Format {
	case FormatTable:
		return f.formatAsTable(result, output)
	case FormatJSON:
		return f.formatAsJSON(result, output)
	case FormatCSV:
		return f.formatAsCSV(result, output)
	case FormatYAML:
		return f.formatAsYAML(result, output)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f.Format)
	}
}

// formatAsTable formats results as an aligned text table
func (f *Formatter) formatAsTable(result *Result, output io.Writer) error {
	if len(result.Rows) == 0 {
		fmt.Fprintln(output, "No results")
		return nil
	}

	widths := make([]int, len(result.Columns))
	for i, col := range result.Columns {
		widths[i] = displayWidth(col)
	}

	cells := make([][]string, len(result.Rows))

	for r, row := range result.Rows {
		cells[r] = make([]string, len(result.Columns))

		for i := range result.Columns {
			if i < len(row) {
				// Keep multi-line payloads on one table row
				cells[r][i] = strings.ReplaceAll(formatValue(row[i]), "\n", "\\n")
			}

			if w := displayWidth(cells[r][i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeTableRow(output, result.Columns, widths)

	separators := make([]string, len(result.Columns))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}

	writeTableRow(output, separators, widths)

	for _, row := range cells {
		writeTableRow(output, row, widths)
	}

	fmt.Fprintf(output, "%d row(s)\n", len(result.Rows))

	return nil
}

func writeTableRow(output io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-displayWidth(cell))
	}

	fmt.Fprintln(output, strings.TrimRight(strings.Join(parts, "  "), " "))
}

// displayWidth returns the column width of s, counting east asian wide
// runes as two cells
func displayWidth(s string) int {
	w := 0

	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}

	return w
}

// formatAsJSON formats results as JSON
func (f *Formatter) formatAsJSON(result *Result, output io.Writer) error {
	jsonResult := map[string]interface{}{
		"data":  rowsToMaps(result.Columns, result.Rows),
		"count": len(result.Rows),
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(jsonResult)
}

// formatAsCSV formats results as CSV
func (f *Formatter) formatAsCSV(result *Result, output io.Writer) error {
	writer := csv.NewWriter(output)
	defer writer.Flush()

	if err := writer.Write(result.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range result.Rows {
		strValues := make([]string, len(row))
		for i, val := range row {
			strValues[i] = formatValue(val)
		}

		if err := writer.Write(strValues); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// formatAsYAML formats results as YAML
func (f *Formatter) formatAsYAML(result *Result, output io.Writer) error {
	yamlResult := map[string]interface{}{
		"data":  rowsToMaps(result.Columns, result.Rows),
		"count": len(result.Rows),
	}

	data, err := yaml.Marshal(yamlResult)
	if err != nil {
		return fmt.Errorf("failed to marshal results to YAML: %w", err)
	}

	_, err = output.Write(data)

	return err
}

// rowsToMaps converts rows to maps
func rowsToMaps(columns []string, rows [][]any) []map[string]interface{} {
	var result []map[string]interface{}

	for _, row := range rows {
		rowMap := make(map[string]interface{})

		for i, col := range columns {
			if i < len(row) {
				rowMap[col] = row[i]
			}
		}

		result = append(result, rowMap)
	}

	return result
}

// formatValue formats a value as a string
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
