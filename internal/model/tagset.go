package model

import "fmt"

// TagSet is the flattened metadata projection consumed by the tagger.
//
// A TagSet is built fresh for each track from the catalog's detail record
// and has no identity beyond its owning pipeline invocation. Optional
// fields (Composers, CoverURL, ...) are empty strings when absent; the
// tagger skips empty fields entirely.
type TagSet struct {
	Title       string
	Artist      string
	Album       string
	Year        string
	AlbumArtist string
	Language    string
	Composers   string
	Label       string
	Copyright   string
	URL         string

	// DurationSeconds is the raw track length; zero means unknown.
	DurationSeconds int

	// CoverURL points at the cover art image to embed, if any.
	CoverURL string
}

// DurationDisplay formats the duration as minutes:seconds with the seconds
// zero-padded to two digits, e.g. "3:05". Returns "" when the duration is
// unknown.
func (t *TagSet) DurationDisplay() string {
	if t.DurationSeconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", t.DurationSeconds/60, t.DurationSeconds%60)
}
