package model

import (
	"fmt"
	"regexp"
	"strings"
)

// maxFileNameLength bounds derived filenames so they stay well under
// filesystem limits even after the output directory is prepended.
const maxFileNameLength = 200

// TrackDescriptor identifies one source track before catalog matching.
//
// Descriptors are produced once by playlist extraction, are immutable, and
// are consumed by exactly one pipeline invocation.
type TrackDescriptor struct {
	// Title is the raw source title, decorations included.
	Title string

	// Uploader is the channel or uploader name, if known.
	Uploader string

	// SourceID is the source service's opaque video identifier.
	SourceID string
}

// reservedFileNameChars are stripped (not replaced) from derived filenames.
var reservedFileNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// TrackFileName derives the on-disk base name for a matched track,
// without extension.
//
// The name is "{title} - {artists}" with filesystem-reserved characters
// removed, truncated to 200 characters, and trimmed of surrounding
// whitespace. Two tracks that derive the same name are treated as the same
// on-disk artifact; the second one is skipped as already existing.
func TrackFileName(title, artists string) string {
	name := fmt.Sprintf("%s - %s", title, artists)
	name = reservedFileNameChars.ReplaceAllString(name, "")

	if runes := []rune(name); len(runes) > maxFileNameLength {
		name = string(runes[:maxFileNameLength])
	}

	return strings.TrimSpace(name)
}
