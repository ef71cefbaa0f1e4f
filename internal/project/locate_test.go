package project

import (
	"os"
	"path/filepath"
	"testing"
)

const mainContent = "\\documentclass{article}\n\\begin{document}\nbody\n\\end{document}\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindMainFileSingleCandidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.tex", "no document environment here\n")
	want := writeFile(t, dir, "sub/report.tex", mainContent)

	got, err := FindMainFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFindMainFilePrefersCanonicalName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "chapters/body.tex", mainContent)
	want := writeFile(t, dir, "main.tex", mainContent)

	got, err := FindMainFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFindMainFileFallsBackToShallowest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "deep/nested/part.tex", mainContent)
	want := writeFile(t, dir, "top.tex", mainContent)

	got, err := FindMainFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFindMainFileNoCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.tex", "just text\n")

	if _, err := FindMainFile(dir); err == nil {
		t.Error("expected error when no file has a document environment")
	}
}

func TestFindCandidatesSkipsDotDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".backup/old.tex", mainContent)
	want := writeFile(t, dir, "main.tex", mainContent)

	got := FindCandidates(dir)
	if len(got) != 1 || got[0] != want {
		t.Errorf("expected [%q], got %v", want, got)
	}
}

func TestChooseMainFile(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		expected   string
	}{
		{
			name:       "single candidate",
			candidates: []string{"/p/sub/report.tex"},
			expected:   "/p/sub/report.tex",
		},
		{
			name:       "canonical name wins over depth",
			candidates: []string{"/p/draft.tex", "/p/sub/paper.tex"},
			expected:   "/p/sub/paper.tex",
		},
		{
			name:       "first canonical in candidate order",
			candidates: []string{"/p/paper.tex", "/p/main.tex"},
			expected:   "/p/paper.tex",
		},
		{
			name:       "shallowest path without canonical name",
			candidates: []string{"/p/a/b/deep.tex", "/p/top.tex"},
			expected:   "/p/top.tex",
		},
		{
			name:       "no candidates",
			candidates: nil,
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseMainFile(tt.candidates); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFindBibFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "refs.bib", "@misc{a, note={X}}")
	second := writeFile(t, dir, "sub/extra.bib", "@misc{b, note={Y}}")
	writeFile(t, dir, "main.tex", mainContent)

	got := FindBibFiles(dir)
	expected := []string{first, second}
	if len(got) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("file %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}
