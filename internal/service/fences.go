package service

import "strings"

// StripCodeFences removes Markdown code-fence delimiters that models wrap
// around JSON replies, then trims surrounding whitespace.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
