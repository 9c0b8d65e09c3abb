package download

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mploader/mploader/internal/model"
)

// Extractor lists the tracks behind a playlist or video URL.
type Extractor interface {
	Extract(ctx context.Context, url string) ([]model.TrackDescriptor, error)
}

// TrackProcessor runs the full pipeline for one track.
type TrackProcessor interface {
	Process(ctx context.Context, track model.TrackDescriptor) model.Outcome
}

// Manager coordinates a run: it extracts the track list, fans the
// tracks out to a bounded pool of workers, and aggregates the per-track
// outcomes into run statistics.
//
// Cancellation is handled at job boundaries. A track that has already
// entered the pipeline runs to completion; tracks still queued are
// drained and recorded as cancelled, so the statistics always account
// for every extracted track.
type Manager struct {
	extractor Extractor
	processor TrackProcessor
	workers   int
	logger    *log.Logger

	done  atomic.Int64
	total atomic.Int64
}

// NewManager creates a Manager processing up to workers tracks
// concurrently. A workers value below 1 is treated as 1. If logger is
// nil, log.Default() is used.
func NewManager(extractor Extractor, processor TrackProcessor, workers int, logger *log.Logger) *Manager {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		extractor: extractor,
		processor: processor,
		workers:   workers,
		logger:    logger,
	}
}

// Progress reports how many tracks have finished out of the total.
// Safe to call from other goroutines while ProcessURL runs.
func (m *Manager) Progress() (done, total int64) {
	return m.done.Load(), m.total.Load()
}

// ProcessURL runs the whole workflow for one playlist or video URL and
// returns the aggregated statistics.
//
// Extraction failure aborts the run before any track is processed. An
// empty extraction is not an error; zero-valued statistics are
// returned. When ctx is cancelled mid-run the in-flight tracks finish,
// the queued remainder is recorded as cancelled, and the context error
// is returned alongside the complete statistics.
func (m *Manager) ProcessURL(ctx context.Context, url string) (*model.RunStatistics, error) {
	m.logger.Info("Extracting tracks", "url", url)
	tracks, err := m.extractor.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extracting tracks from %s: %w", url, err)
	}

	m.done.Store(0)
	m.total.Store(int64(len(tracks)))

	stats := model.NewRunStatistics(len(tracks))
	if len(tracks) == 0 {
		m.logger.Warn("No tracks found", "url", url)
		return stats, nil
	}
	m.logger.Info("Starting downloads", "tracks", len(tracks), "workers", m.workers)

	jobs := make(chan model.TrackDescriptor)
	results := make(chan model.Outcome)

	var g errgroup.Group
	for range m.workers {
		g.Go(func() error {
			for track := range jobs {
				if ctx.Err() != nil {
					// Drain without starting work so every queued
					// track still produces an outcome.
					results <- model.Cancelled(track.Title)
					continue
				}
				// A track that has started is never interrupted
				// mid-stage; cancellation only gates new work.
				results <- m.processor.Process(context.WithoutCancel(ctx), track)
			}
			return nil
		})
	}

	go func() {
		defer close(jobs)
		for _, track := range tracks {
			jobs <- track
		}
	}()

	go func() {
		g.Wait()
		close(results)
	}()

	// Single consumer; stats need no locking.
	for outcome := range results {
		stats.Record(outcome)
		done := m.done.Add(1)
		progress := fmt.Sprintf("[%d/%d]", done, len(tracks))

		switch outcome.Kind {
		case model.OutcomeSuccess:
			m.logger.Info(progress+" Finished", "track", outcome.Label)
		case model.OutcomeSkipped:
			m.logger.Info(progress+" Skipped", "track", outcome.Label)
		case model.OutcomeFailed:
			m.logger.Error(progress+" Failed", "track", outcome.Label, "reason", outcome.Reason)
		case model.OutcomeCancelled:
			m.logger.Warn(progress+" Cancelled", "track", outcome.Label)
		}
	}

	if err := ctx.Err(); err != nil {
		m.logger.Warn("Run cancelled", "cancelled", stats.Cancelled)
		return stats, err
	}
	return stats, nil
}
