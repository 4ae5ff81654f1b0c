package assistant

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "short answer",
			width: 40,
			want:  []string{"short answer"},
		},
		{
			name:  "wraps on spaces",
			text:  "alpha beta gamma delta",
			width: 11,
			want:  []string{"alpha beta", "gamma delta"},
		},
		{
			name:  "preserves blank lines",
			text:  "first\n\nsecond",
			width: 40,
			want:  []string{"first", "", "second"},
		},
		{
			name:  "word longer than width stands alone",
			text:  "a supercalifragilistic b",
			width: 10,
			want:  []string{"a", "supercalifragilistic", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrap() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	for _, line := range wrap(text, 12) {
		if len(line) > 12 && strings.Contains(line, " ") {
			t.Errorf("line %q exceeds width with breakable content", line)
		}
	}
}
