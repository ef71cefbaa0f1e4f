package tex

import (
	"regexp"
	"strings"
)

// Citation command families recognized by the extractor. Each pattern allows
// suffix variants of the base command (\citep, \autocites, ...), an optional
// bracketed note, and a required brace-delimited comma-separated key list.
var citePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\\cite\w*\s*(?:\[[^\]]*\])?\s*\{([^}]+)\}`),
	regexp.MustCompile(`\\autocite\w*\s*(?:\[[^\]]*\])?\s*\{([^}]+)\}`),
	regexp.MustCompile(`\\textcite\w*\s*(?:\[[^\]]*\])?\s*\{([^}]+)\}`),
	regexp.MustCompile(`\\parencite\w*\s*(?:\[[^\]]*\])?\s*\{([^}]+)\}`),
	regexp.MustCompile(`\\footcite\w*\s*(?:\[[^\]]*\])?\s*\{([^}]+)\}`),
}

// ExtractCitations collects the unique citation keys referenced anywhere in
// the expanded document. Multiple commands per line and multiple keys per
// command are all counted; keys are trimmed and empty tokens dropped.
func ExtractCitations(lines []string) map[string]bool {
	citations := make(map[string]bool)

	for _, line := range lines {
		for _, re := range citePatterns {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				for _, key := range strings.Split(match[1], ",") {
					key = strings.TrimSpace(key)
					if key != "" {
						citations[key] = true
					}
				}
			}
		}
	}

	return citations
}
