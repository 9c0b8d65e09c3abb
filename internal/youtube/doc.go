// Package youtube extracts track descriptors from YouTube video and
// playlist URLs, and normalizes raw video titles into catalog search
// queries.
//
// Extraction shells out to yt-dlp in flat-playlist mode, which lists
// entries without downloading anything:
//
//	extractor := youtube.NewExtractor("")
//	tracks, err := extractor.Extract(ctx, playlistURL)
//
// Title normalization strips the decoration commonly present in video
// titles ("(Official Video)", "[HD]", trailing "| ..." suffixes) so the
// catalog search sees only the song title:
//
//	youtube.CleanTitle("Song Title (Official Video) [HD]") // "Song Title"
//
// CleanTitle is idempotent: applying it twice yields the same result as
// applying it once.
package youtube
