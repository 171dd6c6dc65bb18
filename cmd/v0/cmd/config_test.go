package cmd

import "testing"

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ab", "**"},
		{"abcd", "****"},
		{"v1:team:secretvalue", "***************alue"},
	}

	for _, test := range tests {
		result := maskKey(test.input)
		if result != test.expected {
			t.Errorf("maskKey(%q) = %q, want %q", test.input, result, test.expected)
		}
	}
}
