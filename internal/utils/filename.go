package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Runs of whitespace collapse to a single dash
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes name safe to offer as a download file name:
// characters invalid on common filesystems are dropped and whitespace
// becomes a dash.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	name = whitespaceRuns.ReplaceAllString(name, "-")

	// Leave room for the extension
	if len(name) > 200 {
		name = strings.Trim(name[:200], "-")
	}

	if name == "" {
		name = "untitled"
	}
	return name
}
