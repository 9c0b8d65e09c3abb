package youtube

import (
	"regexp"
	"strings"
)

// cleanupPatterns match decoration tokens to remove from source titles.
// Matching is case-insensitive; retained text keeps its original case.
var cleanupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(Official.*?\)`),
	regexp.MustCompile(`(?i)\[Official.*?\]`),
	regexp.MustCompile(`(?i)\(Audio\)`),
	regexp.MustCompile(`(?i)\[Audio\]`),
	regexp.MustCompile(`(?i)\(Lyric.*?\)`),
	regexp.MustCompile(`(?i)\[Lyric.*?\]`),
	regexp.MustCompile(`(?i)\(.*?Video\)`),
	regexp.MustCompile(`(?i)\[.*?Video\]`),
	regexp.MustCompile(`(?i)\bHD\b`),
	regexp.MustCompile(`(?i)\bHQ\b`),
	regexp.MustCompile(`(?i)\b4K\b`),
	regexp.MustCompile(`\|.*$`),
	// Brackets emptied by the removals above, e.g. "[HD]" -> "[]".
	regexp.MustCompile(`\(\s*\)`),
	regexp.MustCompile(`\[\s*\]`),
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	trailingDash  = regexp.MustCompile(`\s*-\s*$`)
)

// CleanTitle normalizes a raw video title into a catalog search query.
//
// Bracketed "Official"/"Audio"/"Lyric" markers, "...Video" markers,
// standalone resolution tags and any trailing |-delimited suffix are
// removed, whitespace runs collapse to single spaces, and a trailing bare
// hyphen is stripped. The transform is idempotent.
func CleanTitle(title string) string {
	cleaned := title
	for _, pattern := range cleanupPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	cleaned = strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
	cleaned = trailingDash.ReplaceAllString(cleaned, "")

	return cleaned
}
