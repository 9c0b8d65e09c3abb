// Package pipeline implements the per-track processing pipeline.
//
// Each track flows through four stages: catalog match (search then
// song details), audio download, MP3 transcode, and ID3 tagging. The
// stages behind the Pipeline are supplied as interfaces so they can be
// swapped out in tests.
//
//	p := pipeline.New(catalog, fetcher, transcoder, tagger, pipeline.Options{
//	    OutputDir:     "songs",
//	    CoverMaxSize:  500,
//	    EmbedCoverArt: true,
//	})
//
//	outcome := p.Process(ctx, track)
//
// Process reports results as outcomes rather than errors: a track that
// cannot be processed fails alone, without disturbing the rest of the
// run.
package pipeline
