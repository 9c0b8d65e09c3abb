package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mploader/mploader/internal/model"
)

type fakeExtractor struct {
	tracks []model.TrackDescriptor
	err    error
}

func (e *fakeExtractor) Extract(_ context.Context, url string) ([]model.TrackDescriptor, error) {
	return e.tracks, e.err
}

// processorFunc adapts a function to the TrackProcessor interface.
type processorFunc func(ctx context.Context, track model.TrackDescriptor) model.Outcome

func (f processorFunc) Process(ctx context.Context, track model.TrackDescriptor) model.Outcome {
	return f(ctx, track)
}

func makeTracks(n int) []model.TrackDescriptor {
	tracks := make([]model.TrackDescriptor, n)
	for i := range tracks {
		tracks[i] = model.TrackDescriptor{Title: fmt.Sprintf("Track %d", i+1)}
	}
	return tracks
}

func TestManager_ProcessURL(t *testing.T) {
	extractor := &fakeExtractor{tracks: makeTracks(3)}
	processor := processorFunc(func(_ context.Context, track model.TrackDescriptor) model.Outcome {
		if track.Title == "Track 2" {
			return model.Failed(track.Title, "no catalog match")
		}
		return model.Success(track.Title)
	})

	m := NewManager(extractor, processor, 2, nil)
	stats, err := m.ProcessURL(context.Background(), "https://example.com/playlist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 3 || stats.Succeeded != 2 || stats.Failed != 1 || stats.Cancelled != 0 {
		t.Errorf("stats = %+v, want total=3 succeeded=2 failed=1", stats)
	}
	if len(stats.FailedTracks) != 1 || stats.FailedTracks[0] != "Track 2" {
		t.Errorf("FailedTracks = %v, want [Track 2]", stats.FailedTracks)
	}
	if !stats.Quiescent() {
		t.Error("statistics do not account for every track")
	}

	done, total := m.Progress()
	if done != 3 || total != 3 {
		t.Errorf("Progress() = %d/%d, want 3/3", done, total)
	}
}

func TestManager_ProcessURLEmptyExtraction(t *testing.T) {
	m := NewManager(&fakeExtractor{}, processorFunc(func(_ context.Context, track model.TrackDescriptor) model.Outcome {
		t.Error("processor should not be called")
		return model.Success(track.Title)
	}), 2, nil)

	stats, err := m.ProcessURL(context.Background(), "https://example.com/empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
}

func TestManager_ProcessURLExtractionError(t *testing.T) {
	m := NewManager(&fakeExtractor{err: errors.New("yt-dlp exited 1")}, processorFunc(func(_ context.Context, track model.TrackDescriptor) model.Outcome {
		return model.Success(track.Title)
	}), 2, nil)

	stats, err := m.ProcessURL(context.Background(), "https://example.com/bad")
	if err == nil {
		t.Fatal("expected extraction error")
	}
	if stats != nil {
		t.Errorf("stats = %+v, want nil on extraction failure", stats)
	}
}

func TestManager_ConcurrencyBound(t *testing.T) {
	const workers = 3
	var current, peak atomic.Int64

	processor := processorFunc(func(_ context.Context, track model.TrackDescriptor) model.Outcome {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		current.Add(-1)
		return model.Success(track.Title)
	})

	m := NewManager(&fakeExtractor{tracks: makeTracks(20)}, processor, workers, nil)
	stats, err := m.ProcessURL(context.Background(), "https://example.com/playlist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Succeeded != 20 {
		t.Errorf("Succeeded = %d, want 20", stats.Succeeded)
	}
	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, exceeds %d workers", p, workers)
	}
}

func TestManager_CancellationDrainsQueued(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	processor := processorFunc(func(_ context.Context, track model.TrackDescriptor) model.Outcome {
		// Cancel mid-run; the in-flight track still completes.
		once.Do(cancel)
		return model.Success(track.Title)
	})

	m := NewManager(&fakeExtractor{tracks: makeTracks(5)}, processor, 1, nil)
	stats, err := m.ProcessURL(ctx, "https://example.com/playlist")

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if stats == nil {
		t.Fatal("stats = nil, want complete statistics on cancellation")
	}
	if stats.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1 (the in-flight track)", stats.Succeeded)
	}
	if stats.Cancelled != 4 {
		t.Errorf("Cancelled = %d, want 4 (the queued remainder)", stats.Cancelled)
	}
	if !stats.Quiescent() {
		t.Error("statistics do not account for every track")
	}
	if len(stats.CancelledTracks) != 4 {
		t.Errorf("CancelledTracks = %v, want 4 labels", stats.CancelledTracks)
	}
}

func TestManager_ProcessorReceivesUncancellableContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	processor := processorFunc(func(pctx context.Context, track model.TrackDescriptor) model.Outcome {
		once.Do(cancel)
		if pctx.Err() != nil {
			t.Error("pipeline context cancelled mid-track")
		}
		return model.Success(track.Title)
	})

	m := NewManager(&fakeExtractor{tracks: makeTracks(1)}, processor, 1, nil)
	if _, err := m.ProcessURL(ctx, "https://example.com/playlist"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
