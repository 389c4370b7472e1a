package names

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize canonicalizes a doctor display name into the key used for
// deduplication. The key is only ever compared for equality, never displayed.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "dr. ", "")
	n = strings.ReplaceAll(n, "dr ", "")
	n = strings.ReplaceAll(n, ".", "")
	n = strings.ReplaceAll(n, ",", "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(n, " "))
}

// MakeID derives a URL-safe identifier from a name. The same name always
// yields the same identifier.
func MakeID(name string) string {
	return strings.Trim(nonSlugRe.ReplaceAllString(Normalize(name), "-"), "-")
}

// Parts splits a "Dr. First ... Last" display name into first and last name.
// Names without the title prefix yield empty parts.
func Parts(name string) (first, last string) {
	if !strings.HasPrefix(name, "Dr. ") {
		return "", ""
	}
	fields := strings.Fields(strings.ReplaceAll(name, "Dr. ", ""))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], fields[len(fields)-1]
}
