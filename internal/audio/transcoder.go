package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultFFmpegPath is the ffmpeg executable name resolved via PATH.
const DefaultFFmpegPath = "ffmpeg"

// Transcoder converts downloaded audio files to MP3 using ffmpeg.
//
// The catalog serves audio in whatever container its CDN prefers
// (typically MP4/AAC); the tagger and most players want MP3. The
// transcoder shells out to ffmpeg for the conversion.
type Transcoder struct {
	ffmpegPath string
	bitrate    string
}

// NewTranscoder creates a Transcoder that invokes the ffmpeg binary at
// ffmpegPath and encodes at the given bitrate (e.g. "320k").
//
// If ffmpegPath is empty, DefaultFFmpegPath is used.
func NewTranscoder(ffmpegPath, bitrate string) *Transcoder {
	if ffmpegPath == "" {
		ffmpegPath = DefaultFFmpegPath
	}
	return &Transcoder{ffmpegPath: ffmpegPath, bitrate: bitrate}
}

// Transcode converts the audio file at src into an MP3 at dst.
//
// On failure any partial output at dst is removed, so a present dst
// always means a complete transcode. The source file is left in place;
// the caller owns its cleanup.
func (t *Transcoder) Transcode(ctx context.Context, src, dst string) error {
	args := []string{
		"-y",
		"-i", src,
		"-vn",
		"-b:a", t.bitrate,
		"-q:a", "0",
		dst,
	}

	cmd := exec.CommandContext(ctx, t.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(dst)
		if line := lastLine(stderr.Bytes()); line != "" {
			return fmt.Errorf("ffmpeg: %s: %w", line, err)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// lastLine returns the last non-empty line of output, which for ffmpeg
// is usually the actual error message.
func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if line := bytes.TrimSpace(lines[i]); len(line) > 0 {
			return string(line)
		}
	}
	return ""
}
