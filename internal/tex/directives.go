package tex

import (
	"regexp"
	"strings"
)

// Include directive spellings recognized by the expander. Each pattern is
// anchored to the start of the comment-stripped line and captures the single
// brace-delimited path argument.
var includePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\\input\s*\{\s*([^}]+)\s*\}`),
	regexp.MustCompile(`^\s*\\include\s*\{\s*([^}]+)\s*\}`),
	regexp.MustCompile(`^\s*\\InputIfFileExists\s*\{\s*([^}]+)\s*\}`),
	regexp.MustCompile(`^\s*\\subfile\s*\{\s*([^}]+)\s*\}`),
}

// MatchInclude reports whether line is an include directive, returning the
// referenced path argument with surrounding whitespace trimmed.
func MatchInclude(line string) (string, bool) {
	for _, re := range includePatterns {
		if matches := re.FindStringSubmatch(line); matches != nil {
			return strings.TrimSpace(matches[1]), true
		}
	}
	return "", false
}
