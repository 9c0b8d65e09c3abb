package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mploader/mploader/internal/model"
)

// DefaultYTDLPPath resolves yt-dlp from PATH when no explicit path is
// configured.
const DefaultYTDLPPath = "yt-dlp"

// Extractor lists the tracks behind a YouTube video or playlist URL
// without downloading any media.
type Extractor struct {
	ytdlpPath string
}

// NewExtractor creates an Extractor. An empty path selects
// DefaultYTDLPPath.
func NewExtractor(ytdlpPath string) *Extractor {
	if ytdlpPath == "" {
		ytdlpPath = DefaultYTDLPPath
	}
	return &Extractor{ytdlpPath: ytdlpPath}
}

// ytdlpEntry is one entry of yt-dlp's flat-playlist JSON output.
type ytdlpEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
}

type ytdlpInfo struct {
	ytdlpEntry
	Entries []ytdlpEntry `json:"entries"`
}

// Extract returns the ordered track descriptors behind url.
//
// A playlist URL yields one descriptor per entry; a single video URL
// yields exactly one. Entries with an empty title are dropped. A yt-dlp
// failure is a run-level error: the caller aborts the whole run rather
// than processing a partial list.
func (e *Extractor) Extract(ctx context.Context, url string) ([]model.TrackDescriptor, error) {
	cmd := exec.CommandContext(ctx, e.ytdlpPath,
		"--quiet",
		"--no-warnings",
		"--flat-playlist",
		"--dump-single-json",
		url,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, lastLine(stderr.String()))
	}

	var info ytdlpInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("parsing yt-dlp output: %w", err)
	}

	if len(info.Entries) == 0 {
		// Single video.
		if info.Title == "" {
			return nil, nil
		}
		return []model.TrackDescriptor{{
			Title:    info.Title,
			Uploader: info.Uploader,
			SourceID: info.ID,
		}}, nil
	}

	tracks := make([]model.TrackDescriptor, 0, len(info.Entries))
	for _, entry := range info.Entries {
		if entry.Title == "" {
			continue
		}
		tracks = append(tracks, model.TrackDescriptor{
			Title:    entry.Title,
			Uploader: entry.Uploader,
			SourceID: entry.ID,
		})
	}

	return tracks, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
