package cli

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Table renders aligned columnar output for the search, trending and
// moods commands.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table with the given header row, writing to stdout.
func NewTable(headers ...string) *Table {
	return NewTableWriter(os.Stdout, headers...)
}

// NewTableWriter creates a table writing to a specific writer.
func NewTableWriter(out io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.Row(headers...)
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = io.WriteString(t.w, strings.Join(values, "\t")+"\n")
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// TruncateString shortens s to maxLen, marking the cut with "...".
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
