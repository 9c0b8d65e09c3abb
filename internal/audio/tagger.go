package audio

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/mploader/mploader/internal/model"
)

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to modify MP3 file metadata including:
//   - Title, Artist, Album Artist, Album
//   - Year, Genre (language), Composer, Publisher
//   - Copyright, source URL and duration as comment frames
//   - Cover Art (attached picture)
//
// Example:
//
//	tagger := NewTagger()
//
//	// After transcoding the track
//	err := tagger.WriteTags(path, tags, artworkBytes)
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", path, err)
//	}
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// WriteTags writes ID3 tags to the MP3 file at path.
//
// This method:
//  1. Opens the existing MP3 file and parses its tags
//  2. Sets text frames from the catalog metadata, skipping empty values
//  3. Adds comment frames for copyright, source URL, and duration
//  4. Embeds cover art if artwork bytes are provided
//  5. Saves the modified tags to the file
//
// Parameters:
//   - path: The MP3 file to tag
//   - tags: Catalog metadata for the track
//   - artwork: JPEG image bytes for cover art (nil to skip artwork)
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) WriteTags(path string, tags *model.TagSet, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening %s for tagging: %w", path, err)
	}
	defer tag.Close()

	t.writeTextFrames(tag, tags)
	t.writeCommentFrames(tag, tags)

	if artwork != nil {
		t.writeArtwork(tag, artwork)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving tags to %s: %w", path, err)
	}
	return nil
}

// writeTextFrames sets text-based ID3 frames from the tag set.
func (t *Tagger) writeTextFrames(tag *id3v2.Tag, tags *model.TagSet) {
	tag.SetTitle(tags.Title)
	tag.SetArtist(tags.Artist)
	tag.SetAlbum(tags.Album)

	// Frames without a dedicated setter. Empty values are skipped
	// rather than written as empty frames.
	setTextFrame(tag, "TDRC", tags.Year)
	setTextFrame(tag, "TPE2", tags.AlbumArtist)
	setTextFrame(tag, "TCON", tags.Language)
	setTextFrame(tag, "TCOM", tags.Composers)
	setTextFrame(tag, "TPUB", tags.Label)
}

// writeCommentFrames stores metadata that has no standard text frame
// as described comment frames.
func (t *Tagger) writeCommentFrames(tag *id3v2.Tag, tags *model.TagSet) {
	addComment(tag, "Copyright", tags.Copyright)
	addComment(tag, "URL", tags.URL)
	addComment(tag, "Duration", tags.DurationDisplay())
}

// writeArtwork embeds cover art as an attached picture frame.
func (t *Tagger) writeArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	// Add new artwork as front cover (APIC frame)
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}

func setTextFrame(tag *id3v2.Tag, id, value string) {
	if value == "" {
		return
	}
	tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
}

func addComment(tag *id3v2.Tag, description, text string) {
	if text == "" {
		return
	}
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: description,
		Text:        text,
	})
}
