package probe

import (
	"regexp"
	"strings"
)

var verRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+\.\d+(?:[\w\.-]+)?)\b`)

// ParseVersion extracts a semantic-looking version from tool output.
// Returns "" when nothing version-shaped is found.
func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Take first line
	line := strings.Split(s, "\n")[0]
	if m := verRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	// Fallback: try on full string
	if m := verRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}
