package cookmode

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short ascii untouched", "stir gently", 20, "stir gently"},
		{"long ascii cut", "abcdefghij", 8, "abcdefg…"},
		{"below minimum untouched", "abcdefghij", 3, "abcdefghij"},
		{"multibyte cut on rune boundary", strings.Repeat("é", 10), 8, strings.Repeat("é", 7) + "…"},
		{"multibyte short untouched", "crème fraîche", 20, "crème fraîche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.maxLen)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.maxLen, got)
			}
		})
	}
}
