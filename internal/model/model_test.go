package model

import (
	"strings"
	"testing"
)

func TestTrackFileName(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		artists string
		want    string
	}{
		{
			name:    "plain title and artist",
			title:   "Song Title",
			artists: "Artist",
			want:    "Song Title - Artist",
		},
		{
			name:    "reserved characters stripped not replaced",
			title:   `So<ng>: "Ti/tle\"`,
			artists: "Ar|ti?st*",
			want:    "Song Title - Artist",
		},
		{
			name:    "multiple artists kept verbatim",
			title:   "Song",
			artists: "A, B, C",
			want:    "Song - A, B, C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackFileName(tt.title, tt.artists)
			if got != tt.want {
				t.Errorf("TrackFileName(%q, %q) = %q, want %q", tt.title, tt.artists, got, tt.want)
			}
		})
	}
}

func TestTrackFileName_AllReservedCharacters(t *testing.T) {
	got := TrackFileName(`<>:"/\|?*`, "Artist")
	for _, c := range `<>:"/\|?*` {
		if strings.ContainsRune(got, c) {
			t.Errorf("filename %q still contains reserved character %q", got, c)
		}
	}
}

func TestTrackFileName_Truncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := TrackFileName(long, "Artist")

	if n := len([]rune(got)); n > 200 {
		t.Errorf("filename length = %d runes, want <= 200", n)
	}
}

func TestTrackFileName_TrimsWhitespace(t *testing.T) {
	got := TrackFileName(" Song ", "Artist ")
	if got != "Song  - Artist" {
		t.Errorf("TrackFileName = %q, want surrounding whitespace trimmed", got)
	}
}

func TestTagSet_DurationDisplay(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{185, "3:05"},
		{60, "1:00"},
		{59, "0:59"},
		{600, "10:00"},
		{0, ""},
		{-3, ""},
	}

	for _, tt := range tests {
		ts := &TagSet{DurationSeconds: tt.seconds}
		if got := ts.DurationDisplay(); got != tt.want {
			t.Errorf("DurationDisplay(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRunStatistics_Record(t *testing.T) {
	stats := NewRunStatistics(4)

	stats.Record(Success("one"))
	stats.Record(Skipped("two"))
	stats.Record(Failed("three", "search: no match"))

	if stats.Quiescent() {
		t.Error("Quiescent() = true before all outcomes recorded")
	}

	stats.Record(Cancelled("four"))

	if stats.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2 (skipped counts as succeeded)", stats.Succeeded)
	}
	if stats.Failed != 1 || len(stats.FailedTracks) != 1 || stats.FailedTracks[0] != "three" {
		t.Errorf("failed aggregate = %d %v, want 1 [three]", stats.Failed, stats.FailedTracks)
	}
	if stats.Cancelled != 1 || stats.CancelledTracks[0] != "four" {
		t.Errorf("cancelled aggregate = %d %v, want 1 [four]", stats.Cancelled, stats.CancelledTracks)
	}
	if !stats.Quiescent() {
		t.Error("Quiescent() = false after all outcomes recorded")
	}
}
