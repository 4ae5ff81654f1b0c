package roadmaps

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"DSA", 10, "DSA"},
		{"System Design Fundamentals", 10, "System De…"},
		{"日本語のトピックです", 5, "日本語の…"},
		{"Español básico", 8, "Español…"},
	}
	for _, tt := range tests {
		if got := clip(tt.in, tt.max); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
	// The clipped result never exceeds the budget in runes.
	if got := clip("अल्गोरिदम और डेटा संरचना", 12); len([]rune(got)) > 12 {
		t.Errorf("clip returned %d runes, want at most 12", len([]rune(got)))
	}
}
