package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify is the deterministic name-to-slug transform: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, no leading or trailing
// hyphens. Slugify("Rainbow Butter") == "rainbow-butter".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
