package cli

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	var buf strings.Builder
	table := NewTableWriter(&buf, "#", "TITLE")
	table.Row("1", "Song A")
	table.Row("2", "Another Song")
	table.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.Contains(lines[0], "TITLE") {
		t.Errorf("header = %q, want # and TITLE columns", lines[0])
	}
	titleCol := strings.Index(lines[0], "TITLE")
	for _, line := range lines[1:] {
		if idx := strings.IndexAny(line, "SA"); idx != titleCol {
			t.Errorf("row %q: title column at %d, want %d", line, idx, titleCol)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a much longer title", 10, "a much ..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.s, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
	}
}
