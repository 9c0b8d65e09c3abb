package download

import (
	"github.com/charmbracelet/log"

	"github.com/mploader/mploader/internal/audio"
	"github.com/mploader/mploader/internal/config"
	"github.com/mploader/mploader/internal/http"
	"github.com/mploader/mploader/internal/pipeline"
	"github.com/mploader/mploader/internal/saavn"
	"github.com/mploader/mploader/internal/youtube"
)

// Build wires a Manager from settings with the concrete production
// stages: yt-dlp extraction, the JioSaavn catalog, ffmpeg transcoding
// and ID3 tagging.
func Build(settings *config.Settings, logger *log.Logger) *Manager {
	httpClient := http.NewClient()

	p := pipeline.New(
		saavn.NewClient(settings.SaavnBaseURL, httpClient),
		httpClient,
		audio.NewTranscoder(settings.FFmpegPath, settings.Bitrate),
		audio.NewTagger(),
		pipeline.Options{
			OutputDir:     settings.OutputDir,
			CoverMaxSize:  settings.CoverMaxSize,
			EmbedCoverArt: settings.EmbedCoverArt,
			Logger:        logger,
		},
	)

	return NewManager(youtube.NewExtractor(settings.YTDLPPath), p, settings.Workers, logger)
}
