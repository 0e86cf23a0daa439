package slug

import (
	"regexp"
	"strings"
)

var invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
var dashRuns = regexp.MustCompile(`-{2,}`)

// Derive builds the default public slug for a couple by joining the two given
// names, lower-cased and space-stripped. It is only a convenience seed; the
// author may override it, and uniqueness is enforced by the database index.
func Derive(groomName, brideName string) string {
	groom := Sanitize(groomName)
	bride := Sanitize(brideName)
	if groom == "" {
		return bride
	}
	if bride == "" {
		return groom
	}
	return groom + "-" + bride
}

// Sanitize lower-cases s, removes spaces and anything outside [a-z0-9-], and
// collapses dash runs so the result is safe in a URL path segment.
func Sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = invalidChars.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
