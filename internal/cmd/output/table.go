package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	// maxColumnWidth caps both the computed column width and cell
	// truncation so a column never exceeds 40 characters.
	maxColumnWidth = 40

	// maxListItemWidth caps items in a list-of-scalars view.
	maxListItemWidth = 120

	// columnSeparator joins header and row cells.
	columnSeparator = " | "

	// ellipsis marks truncated values. Counted as one character.
	ellipsis = "…"

	// noItemsMessage is the placeholder for empty lists.
	noItemsMessage = "No items found"
)

// truncate cuts s so that the result, including the trailing ellipsis,
// is exactly limit characters when s is longer than limit.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + ellipsis
}

// pad right-pads s with spaces to width characters.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func renderNoItems(w io.Writer) error {
	_, err := fmt.Fprintln(w, noItemsMessage)
	return err
}

// renderScalarList emits one numbered line per element.
func renderScalarList(w io.Writer, scalars []any) error {
	for i, v := range scalars {
		line := truncate(Stringify(v), maxListItemWidth)
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, line); err != nil {
			return err
		}
	}
	return nil
}

// renderRecordList emits a padded table. Columns are the union of all keys
// across all records in first-seen order; a record missing a key renders an
// empty cell. Column widths and cell truncation share the same 40-character
// limit, so the width computation sees cells post-truncation.
func renderRecordList(w io.Writer, records []Record) error {
	var columns []string
	seen := map[string]bool{}
	for _, record := range records {
		for _, f := range record {
			if !seen[f.Key] {
				seen[f.Key] = true
				columns = append(columns, f.Key)
			}
		}
	}

	// Pre-stringify and truncate every cell, then size columns.
	rows := make([][]string, len(records))
	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = len([]rune(name))
	}
	for ri, record := range records {
		row := make([]string, len(columns))
		for ci, name := range columns {
			var cell string
			if v, ok := record.Get(name); ok {
				cell = truncate(Stringify(v), maxColumnWidth)
			}
			row[ci] = cell
			if n := len([]rune(cell)); n > widths[ci] {
				widths[ci] = n
			}
		}
		rows[ri] = row
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}

	headerCells := make([]string, len(columns))
	for i, name := range columns {
		headerCells[i] = pad(truncate(name, maxColumnWidth), widths[i])
	}
	header := strings.Join(headerCells, columnSeparator)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", len([]rune(header)))); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, columnSeparator)); err != nil {
			return err
		}
	}
	return nil
}

// renderRecord emits one "key: value" line per field. The single-object
// view is untruncated.
func renderRecord(w io.Writer, record Record) error {
	for _, f := range record {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Key, Stringify(f.Value)); err != nil {
			return err
		}
	}
	return nil
}
