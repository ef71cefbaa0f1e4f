// Package bib extracts entries from BibTeX databases and resolves citation
// keys against them.
//
// The scanner recognizes the minimal record shape
//
//	Entry ::= '@' Type '{' Key ',' ... '}'    -- braces balanced
//
// and keeps each entry verbatim. Nested braces inside field values are
// passed over by depth counting; @string, @preamble and field-level
// validation are not handled.
package bib
