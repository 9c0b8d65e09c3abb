package report

import (
	"strings"
	"testing"

	"github.com/mploader/mploader/internal/model"
)

func TestBuild(t *testing.T) {
	stats := model.NewRunStatistics(5)
	stats.Record(model.Success("Track 1"))
	stats.Record(model.Skipped("Track 2"))
	stats.Record(model.Failed("Track 3", "no catalog match"))
	stats.Record(model.Cancelled("Track 4"))
	stats.Record(model.Cancelled("Track 5"))

	out := Build(stats)

	for _, want := range []string{
		"Total tracks:  5",
		"Succeeded:     2",
		"Failed:        1",
		"Cancelled:     2",
		"Failed tracks:",
		"  - Track 3",
		"Cancelled tracks:",
		"  - Track 4",
		"  - Track 5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBuild_NoFailures(t *testing.T) {
	stats := model.NewRunStatistics(2)
	stats.Record(model.Success("Track 1"))
	stats.Record(model.Success("Track 2"))

	out := Build(stats)
	if strings.Contains(out, "Failed tracks:") {
		t.Error("clean run should not list failed tracks")
	}
	if strings.Contains(out, "Cancelled:") {
		t.Error("uncancelled run should not show a cancelled count")
	}
}

func TestBuild_Empty(t *testing.T) {
	out := Build(model.NewRunStatistics(0))
	if !strings.Contains(out, "Nothing to do") {
		t.Errorf("empty run summary = %q", out)
	}
}
