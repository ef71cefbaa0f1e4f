package tex

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{
			name:     "no comment",
			line:     `\section{Intro}`,
			expected: `\section{Intro}`,
		},
		{
			name:     "full line comment",
			line:     "% just a note",
			expected: "",
		},
		{
			name:     "trailing comment",
			line:     "text % note",
			expected: "text ",
		},
		{
			name:     "escaped percent kept",
			line:     `50\% of cases`,
			expected: `50\% of cases`,
		},
		{
			name:     "escaped percent then real comment",
			line:     `50\% of cases % note`,
			expected: `50\% of cases `,
		},
		{
			name:     "double backslash does not escape",
			line:     `row \\% comment`,
			expected: `row \\`,
		},
		{
			name:     "triple backslash escapes",
			line:     `odd \\\% literal`,
			expected: `odd \\\% literal`,
		},
		{
			name:     "empty line",
			line:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.line); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
