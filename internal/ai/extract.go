package ai

import "strings"

// fences commonly wrap LLM output and are stripped before scanning.
var fences = []string{"```json", "```yaml", "```text", "```", "`json", "`"}

// ExtractJSON returns the first balanced brace-delimited span in s, tolerating
// surrounding prose and markdown fences. Braces inside JSON strings do not
// count toward the balance. Returns "" when no balanced object exists.
func ExtractJSON(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, f := range fences {
		s = strings.ReplaceAll(s, f, "")
	}

	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}

	return ""
}
