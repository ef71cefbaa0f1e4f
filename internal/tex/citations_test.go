package tex

import "testing"

func TestExtractCitations(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "single cite",
			lines:    []string{`as shown in \cite{knuth84}`},
			expected: []string{"knuth84"},
		},
		{
			name:     "comma list with duplicates and spaces",
			lines:    []string{`\cite{a, b,b, c}`},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "suffix variants",
			lines:    []string{`\citep{p1} and \citet{t1}`},
			expected: []string{"p1", "t1"},
		},
		{
			name:     "optional note argument",
			lines:    []string{`\cite[p. 42]{noted}`},
			expected: []string{"noted"},
		},
		{
			name:     "biblatex families",
			lines:    []string{`\autocite{a1}`, `\textcite{t2}`, `\parencite{p2}`, `\footcite{f1}`},
			expected: []string{"a1", "t2", "p2", "f1"},
		},
		{
			name:     "multiple matches per line",
			lines:    []string{`\cite{x} middle \cite{y}`},
			expected: []string{"x", "y"},
		},
		{
			name:     "cited key inside comment still counts",
			lines:    []string{`% see \cite{hidden}`},
			expected: []string{"hidden"},
		},
		{
			name:     "empty tokens dropped",
			lines:    []string{`\cite{a,,b,}`},
			expected: []string{"a", "b"},
		},
		{
			name:     "no citations",
			lines:    []string{"plain text"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCitations(tt.lines)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d keys, got %d: %v", len(tt.expected), len(got), got)
			}
			for _, key := range tt.expected {
				if !got[key] {
					t.Errorf("expected key %q in result, got %v", key, got)
				}
			}
		})
	}
}
