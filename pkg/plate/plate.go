package plate

import (
	"regexp"
	"strings"
)

// formatPattern matches a canonical Malaysian plate: 1-3 letters, 1-4 digits,
// up to 2 trailing letters.
var formatPattern = regexp.MustCompile(`^[A-Z]{1,3}\d{1,4}[A-Z]{0,2}$`)

// Canonicalize returns the canonical form of a raw plate: uppercase with all
// whitespace stripped. Idempotent.
func Canonicalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), "")
}

// IsValidFormat reports whether the canonical form of raw is a
// syntactically valid plate.
func IsValidFormat(raw string) bool {
	return formatPattern.MatchString(Canonicalize(raw))
}
