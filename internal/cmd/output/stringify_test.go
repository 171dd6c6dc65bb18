package output

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
)

func TestStringify(t *testing.T) {
	ts := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(9000000000), "9000000000"},
		{"float", 3.5, "3.5"},
		{"time", ts, "2026-01-15T09:30:00Z"},
		{"utc time", utc.Time{Time: ts}, "2026-01-15T09:30:00Z"},
		{"time pointer", &ts, "2026-01-15T09:30:00Z"},
		{"nil time pointer", (*time.Time)(nil), ""},
		{"bytes", []byte("raw"), "raw"},
		{"nested map", map[string]int{"a": 1}, `{"a":1}`},
		{"nested slice", []string{"a", "b"}, `["a","b"]`},
		{"nested struct", struct {
			ID string `json:"id"`
		}{ID: "x"}, `{"id":"x"}`},
	}

	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStringify_UnserializableFallsBack(t *testing.T) {
	// A channel defeats JSON serialization; the default textual form is
	// still returned rather than an error or panic.
	ch := make(chan int)
	if got := Stringify(ch); got == "" {
		t.Error("Stringify(chan) should return a best-effort form, not empty")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 40, "short"},
		{"exactly-five", 12, "exactly-five"},
		{"abcdef", 5, "abcd…"},
		{"", 40, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}

	// Multi-byte runes count as single characters.
	got := truncate("ééééé", 3)
	if runes := []rune(got); len(runes) != 3 || runes[2] != '…' {
		t.Errorf("truncate of multi-byte string = %q", got)
	}
}
