// Package download orchestrates concurrent track processing.
//
// The Manager turns one playlist URL into a finished run: extract the
// track list, process tracks through a bounded worker pool, and
// aggregate outcomes into statistics.
//
//	manager := download.NewManager(extractor, processor, 4, logger)
//	stats, err := manager.ProcessURL(ctx, playlistURL)
//
// Features:
//   - Bounded concurrency (fixed worker pool)
//   - Per-track failure isolation; one bad track never stops the run
//   - Graceful cancellation: in-flight tracks finish, queued tracks
//     drain as cancelled, statistics stay complete
//   - Progress reporting for UIs via Progress()
package download
