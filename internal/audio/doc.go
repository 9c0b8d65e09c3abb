// Package audio provides audio file manipulation services including
// MP3 transcoding and ID3 tag writing.
//
// # Transcoding
//
// Use the Transcoder to convert downloaded audio to MP3 via ffmpeg:
//
//	tc := audio.NewTranscoder("", "320k")
//	err := tc.Transcode(ctx, "track.tmp", "track.mp3")
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files:
//
//	tagger := audio.NewTagger()
//	err := tagger.WriteTags(path, tags, artworkBytes)
//
// The tagger supports:
//   - Title, Artist, Album Artist, Album
//   - Year, Genre, Composer, Publisher
//   - Copyright, source URL and duration (comment frames)
//   - Cover Art (embedded in MP3)
package audio
