package model

// OutcomeKind classifies the terminal state of one pipeline invocation.
type OutcomeKind int

const (
	// OutcomeSuccess means the track was downloaded, transcoded and saved.
	// Tagging is best-effort and does not affect this.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeSkipped means the output file already existed on disk and the
	// pipeline short-circuited without re-downloading.
	OutcomeSkipped

	// OutcomeFailed means a pipeline stage failed terminally for this track.
	OutcomeFailed

	// OutcomeCancelled means the invocation never started because the run
	// was cancelled first.
	OutcomeCancelled
)

// Outcome is the terminal result of one pipeline invocation.
type Outcome struct {
	// Kind is the tri-state (plus cancelled) classification.
	Kind OutcomeKind

	// Label is the human-readable track label used in reports.
	Label string

	// Reason names the failing stage and underlying cause for
	// OutcomeFailed; empty otherwise.
	Reason string
}

// Success returns a success outcome for the given track label.
func Success(label string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Label: label}
}

// Skipped returns an already-exists outcome for the given track label.
func Skipped(label string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Label: label}
}

// Failed returns a failure outcome carrying the stage name and cause.
func Failed(label, reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Label: label, Reason: reason}
}

// Cancelled returns a cancelled outcome for a track that never started.
func Cancelled(label string) Outcome {
	return Outcome{Kind: OutcomeCancelled, Label: label}
}

// RunStatistics aggregates outcomes for one run.
//
// Skipped tracks count as succeeded: the desired artifact exists on disk.
// The aggregate has exactly one writer, the orchestrator's aggregation
// loop, so no locking is needed.
type RunStatistics struct {
	// Total is the number of tracks submitted to the run.
	Total int

	// Succeeded counts successful and skipped-existing invocations.
	Succeeded int

	// Failed counts terminally failed invocations.
	Failed int

	// Cancelled counts submissions that never started.
	Cancelled int

	// FailedTracks holds the labels of failed tracks, in completion order.
	FailedTracks []string

	// CancelledTracks holds the labels of cancelled tracks.
	CancelledTracks []string
}

// NewRunStatistics creates an empty aggregate for a run of total tracks.
func NewRunStatistics(total int) *RunStatistics {
	return &RunStatistics{Total: total}
}

// Record folds one outcome into the aggregate. It must only be called from
// a single goroutine at a time.
func (s *RunStatistics) Record(o Outcome) {
	switch o.Kind {
	case OutcomeSuccess, OutcomeSkipped:
		s.Succeeded++
	case OutcomeFailed:
		s.Failed++
		s.FailedTracks = append(s.FailedTracks, o.Label)
	case OutcomeCancelled:
		s.Cancelled++
		s.CancelledTracks = append(s.CancelledTracks, o.Label)
	}
}

// Quiescent reports whether every submitted track has reached a terminal
// outcome.
func (s *RunStatistics) Quiescent() bool {
	return s.Succeeded+s.Failed+s.Cancelled == s.Total
}
