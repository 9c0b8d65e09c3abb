package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	ioutils "github.com/mploader/mploader/internal/io"
	"github.com/mploader/mploader/internal/model"
	"github.com/mploader/mploader/internal/saavn"
	"github.com/mploader/mploader/internal/youtube"
)

// Catalog looks up tracks in the music catalog.
type Catalog interface {
	Search(ctx context.Context, query string) (*saavn.Candidate, error)
	SongDetails(ctx context.Context, id string) (*saavn.Song, error)
}

// Fetcher retrieves remote resources.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
}

// Transcoder converts downloaded audio to MP3.
type Transcoder interface {
	Transcode(ctx context.Context, src, dst string) error
}

// Tagger writes ID3 tags to a finished MP3.
type Tagger interface {
	WriteTags(path string, tags *model.TagSet, artwork []byte) error
}

// Options configures a Pipeline.
type Options struct {
	// OutputDir is where finished MP3s are written.
	OutputDir string

	// CoverMaxSize bounds embedded cover art dimensions in pixels.
	CoverMaxSize int

	// EmbedCoverArt controls whether cover art is fetched and embedded.
	EmbedCoverArt bool

	// Logger receives per-track progress. Defaults to log.Default().
	Logger *log.Logger
}

// Pipeline processes a single track end to end: catalog match, audio
// download, MP3 transcode and ID3 tagging.
//
// Process never touches files outside OutputDir, and a failed track
// leaves no partial output behind: the download goes to a uniquely
// named temp file that is always removed, and the transcoder cleans up
// its own partial output.
type Pipeline struct {
	catalog    Catalog
	fetcher    Fetcher
	transcoder Transcoder
	tagger     Tagger
	images     *ioutils.ImageService
	opts       Options
}

// New creates a Pipeline from its stage implementations.
func New(catalog Catalog, fetcher Fetcher, transcoder Transcoder, tagger Tagger, opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Pipeline{
		catalog:    catalog,
		fetcher:    fetcher,
		transcoder: transcoder,
		tagger:     tagger,
		images:     ioutils.NewImageService(),
		opts:       opts,
	}
}

// Process runs the full pipeline for one track and reports the result
// as an outcome rather than an error: per-track problems are contained
// here so one bad track never affects the others.
//
// A track whose MP3 already exists in OutputDir is skipped, not
// re-downloaded. Failure to embed tags or artwork is logged but does
// not fail the track; the playable MP3 is already on disk.
func (p *Pipeline) Process(ctx context.Context, track model.TrackDescriptor) model.Outcome {
	label := track.Title
	logger := p.opts.Logger.With("track", label)

	query := youtube.CleanTitle(track.Title)

	candidate, err := p.catalog.Search(ctx, query)
	if err != nil {
		logger.Error("Catalog search failed", "query", query, "err", err)
		return model.Failed(label, fmt.Sprintf("searching catalog: %v", err))
	}
	if candidate == nil {
		logger.Warn("No catalog match", "query", query)
		return model.Failed(label, "no catalog match")
	}

	song, err := p.catalog.SongDetails(ctx, candidate.ID)
	if err != nil {
		logger.Error("Fetching song details failed", "id", candidate.ID, "err", err)
		return model.Failed(label, fmt.Sprintf("fetching song details: %v", err))
	}
	if song == nil {
		logger.Warn("Song details unavailable", "id", candidate.ID)
		return model.Failed(label, "song details unavailable")
	}

	audioURL := song.BestAudioURL()
	if audioURL == "" {
		logger.Warn("No download link in catalog record", "id", song.ID)
		return model.Failed(label, "no download link")
	}

	fileName := model.TrackFileName(song.Name, song.PrimaryArtists())
	finalPath := filepath.Join(p.opts.OutputDir, fileName+".mp3")

	if ioutils.FileExists(finalPath) {
		logger.Info("Already downloaded, skipping", "file", fileName+".mp3")
		return model.Skipped(label)
	}

	tmpPath := filepath.Join(p.opts.OutputDir, fileName+"."+uuid.NewString()+".tmp")
	defer os.Remove(tmpPath)

	logger.Debug("Downloading audio", "url", audioURL)
	if err := p.fetcher.DownloadFile(ctx, audioURL, tmpPath, nil); err != nil {
		logger.Error("Download failed", "err", err)
		return model.Failed(label, fmt.Sprintf("downloading audio: %v", err))
	}

	logger.Debug("Transcoding to MP3", "file", fileName+".mp3")
	if err := p.transcoder.Transcode(ctx, tmpPath, finalPath); err != nil {
		logger.Error("Transcode failed", "err", err)
		return model.Failed(label, fmt.Sprintf("transcoding: %v", err))
	}

	if err := p.tagger.WriteTags(finalPath, song.ToTagSet(), p.fetchArtwork(ctx, logger, song)); err != nil {
		// The MP3 is complete and playable; bad tags are not worth
		// failing the track over.
		logger.Warn("Writing tags failed", "err", err)
	}

	logger.Info("Done", "file", fileName+".mp3")
	return model.Success(label)
}

// fetchArtwork retrieves and resizes cover art, returning nil when art
// is disabled, absent, or cannot be fetched. If resizing fails the
// original bytes are embedded as-is.
func (p *Pipeline) fetchArtwork(ctx context.Context, logger *log.Logger, song *saavn.Song) []byte {
	if !p.opts.EmbedCoverArt {
		return nil
	}
	imageURL := song.BestImageURL()
	if imageURL == "" {
		return nil
	}

	data, err := p.fetcher.Get(ctx, imageURL)
	if err != nil {
		logger.Warn("Fetching cover art failed", "url", imageURL, "err", err)
		return nil
	}

	resized, err := p.images.ResizeImage(data, p.opts.CoverMaxSize, p.opts.CoverMaxSize)
	if err != nil {
		logger.Warn("Resizing cover art failed", "err", err)
		return data
	}
	return resized
}
