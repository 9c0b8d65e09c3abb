// Package model defines the core data structures used throughout mploader.
//
// # TrackDescriptor
//
// TrackDescriptor is the minimal identifying record produced by playlist
// extraction, before any catalog matching has happened:
//
//	track := model.TrackDescriptor{Title: "Song (Official Video)", Uploader: "Channel", SourceID: "abc123"}
//
// # TagSet
//
// TagSet is the flat metadata projection embedded into the final MP3:
//
//	tags.DurationDisplay() // "3:05"
//
// # Outcome and RunStatistics
//
// Every pipeline invocation produces exactly one Outcome; the orchestrator
// folds outcomes into a RunStatistics aggregate:
//
//	stats := model.NewRunStatistics(len(tracks))
//	stats.Record(outcome)
//	stats.Quiescent() // true once every submission is accounted for
//
// RunStatistics is not safe for concurrent mutation. The orchestrator keeps
// a single aggregation goroutine as the only writer.
package model
