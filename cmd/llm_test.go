package cmd

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"claude-sonnet-4", 28, "claude-sonnet-4"},
		{"claude-sonnet-4-20250514", 10, "claude-son"},
		{"", 5, ""},
		{"डेटा संरचना", 4, "डेटा"},
		{"日本語のトピック", 3, "日本語"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
