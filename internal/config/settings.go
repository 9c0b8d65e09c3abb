package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	OutputDir string `toml:"output_dir"`
	Workers   int    `toml:"workers"`

	// Catalog settings
	SaavnBaseURL string `toml:"saavn_base_url"`

	// Transcoding settings
	Bitrate    string `toml:"bitrate"`
	YTDLPPath  string `toml:"ytdlp_path"`
	FFmpegPath string `toml:"ffmpeg_path"`

	// Cover art settings
	CoverMaxSize  int  `toml:"cover_max_size"`
	EmbedCoverArt bool `toml:"embed_cover_art"`

	// Logging
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns settings parsed from the embedded example config.
func DefaultSettings() *Settings {
	var s Settings
	if err := toml.Unmarshal(exampleConf, &s); err != nil {
		panic(fmt.Sprintf("parsing embedded default config: %v", err))
	}
	return &s
}

// Load reads settings from a TOML file.
//
// A missing file is not an error; defaults are returned so the tool
// works without any configuration. Keys absent from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return settings, nil
}

// WriteExample creates a config file at path populated with the
// embedded example config.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
