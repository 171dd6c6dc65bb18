package output

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type chatRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Private bool   `json:"private,omitempty"`
	hidden  string
}

func render(t *testing.T, data any, format Format) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, data, format); err != nil {
		t.Fatalf("Render(%v) failed: %v", format, err)
	}
	return buf.String()
}

func TestJSONFormat_RecordOrderAndIndent(t *testing.T) {
	data := Record{
		{Key: "id", Value: "1"},
		{Key: "name", Value: "Test"},
	}

	got := render(t, data, FormatJSON)
	want := "{\n  \"id\": \"1\",\n  \"name\": \"Test\"\n}\n"
	if got != want {
		t.Errorf("json output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestJSONFormat_StructFieldOrder(t *testing.T) {
	got := render(t, chatRow{ID: "1", Name: "Test", Private: true}, FormatJSON)
	want := "{\n  \"id\": \"1\",\n  \"name\": \"Test\",\n  \"private\": true\n}\n"
	if got != want {
		t.Errorf("json output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestJSONFormat_NoHTMLEscaping(t *testing.T) {
	got := render(t, Record{{Key: "url", Value: "https://v0.dev?a=1&b=2"}}, FormatJSON)
	if !strings.Contains(got, "a=1&b=2") {
		t.Errorf("json output should not HTML-escape: %q", got)
	}
}

func TestTableFormat_EmptyList(t *testing.T) {
	for _, data := range []any{[]Record{}, []string{}, []chatRow{}} {
		got := render(t, data, FormatTable)
		if got != "No items found\n" {
			t.Errorf("empty list output = %q, want placeholder line", got)
		}
		if strings.Contains(got, "-") || strings.Contains(got, "|") {
			t.Errorf("empty list must not print header or separator: %q", got)
		}
	}
}

func TestTableFormat_ScalarList(t *testing.T) {
	got := render(t, []string{"alpha", "beta"}, FormatTable)
	want := "1. alpha\n2. beta\n"
	if got != want {
		t.Errorf("scalar list output = %q, want %q", got, want)
	}
}

func TestTableFormat_ScalarListTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := render(t, []string{long}, FormatTable)

	line := strings.TrimSuffix(strings.TrimPrefix(got, "1. "), "\n")
	runes := []rune(line)
	if len(runes) != 120 {
		t.Fatalf("list item length = %d, want 120", len(runes))
	}
	if runes[119] != '…' {
		t.Errorf("list item should end with ellipsis, got %q", string(runes[115:]))
	}
}

func TestTableFormat_SparseColumns(t *testing.T) {
	data := []Record{
		{{Key: "id", Value: "1"}},
		{{Key: "name", Value: "X"}},
	}

	got := render(t, data, FormatTable)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and two rows, got %d lines: %q", len(lines), got)
	}

	header := lines[0]
	if header != "id | name" {
		t.Errorf("header = %q, want %q", header, "id | name")
	}
	if lines[1] != strings.Repeat("-", len([]rune(header))) {
		t.Errorf("separator = %q, want %d dashes", lines[1], len([]rune(header)))
	}
	if lines[2] != "1  |     " {
		t.Errorf("row 1 = %q (name cell should be empty)", lines[2])
	}
	if lines[3] != "   | X   " {
		t.Errorf("row 2 = %q (id cell should be empty)", lines[3])
	}
}

func TestTableFormat_CellTruncationAt40(t *testing.T) {
	long := strings.Repeat("a", 45)
	data := []Record{{{Key: "name", Value: long}}}

	got := render(t, data, FormatTable)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	cell := []rune(lines[2])
	if len(cell) != 40 {
		t.Fatalf("cell length = %d, want 40", len(cell))
	}
	if cell[39] != '…' {
		t.Errorf("cell should end with ellipsis: %q", lines[2])
	}
	if string(cell[:39]) != strings.Repeat("a", 39) {
		t.Errorf("cell prefix should be the first 39 characters of the value")
	}
}

func TestTableFormat_ColumnWidthNeverExceeds40(t *testing.T) {
	data := []Record{
		{{Key: "id", Value: "1"}, {Key: "msg", Value: strings.Repeat("b", 100)}},
		{{Key: "id", Value: "2"}, {Key: "msg", Value: "short"}},
	}

	got := render(t, data, FormatTable)
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		for _, cell := range strings.Split(line, " | ") {
			if n := len([]rune(cell)); n > 40 {
				t.Errorf("cell %q is %d characters, cap is 40", cell, n)
			}
		}
	}
}

func TestTableFormat_SingleRecordUntruncated(t *testing.T) {
	long := strings.Repeat("z", 200)
	data := Record{
		{Key: "id", Value: "chat_1"},
		{Key: "content", Value: long},
	}

	got := render(t, data, FormatTable)
	want := "id: chat_1\ncontent: " + long + "\n"
	if got != want {
		t.Errorf("single record output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestTableFormat_Scalar(t *testing.T) {
	if got := render(t, 42, FormatTable); got != "42\n" {
		t.Errorf("scalar output = %q, want %q", got, "42\n")
	}
	if got := render(t, "ready", FormatTable); got != "ready\n" {
		t.Errorf("scalar output = %q, want %q", got, "ready\n")
	}
}

func TestTableFormat_StructSlice(t *testing.T) {
	data := []chatRow{
		{ID: "1", Name: "First", Private: true},
		{ID: "2", Name: "Second"},
	}

	got := render(t, data, FormatTable)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "id") || !strings.Contains(lines[0], "name") {
		t.Errorf("header should use json tag names: %q", lines[0])
	}
	// Unexported fields never become columns.
	if strings.Contains(lines[0], "hidden") {
		t.Errorf("unexported field leaked into header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "First") || !strings.Contains(lines[3], "Second") {
		t.Errorf("rows missing values: %q", got)
	}
}

func TestYAMLFormat(t *testing.T) {
	data := Record{
		{Key: "id", Value: "1"},
		{Key: "name", Value: "Test"},
	}

	got := render(t, data, FormatYAML)
	want := "id: \"1\"\nname: Test\n"
	if got != want {
		t.Errorf("yaml output = %q, want %q", got, want)
	}
}

func TestYAMLFormat_FallsBackToJSONOnFailure(t *testing.T) {
	// Functions are not serializable by either encoder; the renderer must
	// still produce output without surfacing an error.
	data := map[string]any{"callback": func() {}}

	var buf bytes.Buffer
	if err := Render(&buf, data, FormatYAML); err != nil {
		t.Fatalf("yaml render of unserializable data returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("yaml fallback produced no output")
	}
}

func TestRenderIdempotence(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := []Record{
		{{Key: "id", Value: "dpl_1"}, {Key: "created_at", Value: ts}},
		{{Key: "id", Value: "dpl_2"}, {Key: "created_at", Value: ts.Add(time.Hour)}},
	}

	for _, format := range []Format{FormatTable, FormatJSON, FormatYAML} {
		first := render(t, data, format)
		second := render(t, data, format)
		if first != second {
			t.Errorf("%s rendering is not byte-identical across runs", format)
		}
	}
}

func TestRenderIdempotence_MapKeysSorted(t *testing.T) {
	data := map[string]any{"b": 2, "a": 1, "c": 3}
	for i := 0; i < 5; i++ {
		if got := render(t, data, FormatTable); got != "a: 1\nb: 2\nc: 3\n" {
			t.Fatalf("map rendering not deterministic: %q", got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") should fail")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		data any
		want Kind
	}{
		{"nil", nil, KindScalar},
		{"string", "x", KindScalar},
		{"number", 7, KindScalar},
		{"time", time.Now(), KindScalar},
		{"record", Record{{Key: "a", Value: 1}}, KindRecord},
		{"map", map[string]any{"a": 1}, KindRecord},
		{"struct", chatRow{}, KindRecord},
		{"struct pointer", &chatRow{}, KindRecord},
		{"scalar slice", []int{1, 2}, KindScalarList},
		{"struct slice", []chatRow{{}}, KindRecordList},
		{"map slice", []map[string]any{{"a": 1}}, KindRecordList},
	}

	for _, tt := range tests {
		if got := Classify(tt.data); got.Kind != tt.want {
			t.Errorf("Classify(%s) kind = %v, want %v", tt.name, got.Kind, tt.want)
		}
	}
}
