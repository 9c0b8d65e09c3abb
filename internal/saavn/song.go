package saavn

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/mploader/mploader/internal/model"
)

const (
	// HighestQuality is the preferred audio tier; the selector scans for it
	// before trusting the service's link ordering.
	HighestQuality = "320kbps"

	// PreferredImageQuality is the preferred cover art resolution tag.
	PreferredImageQuality = "500x500"
)

// AssetLink is one quality-tagged downloadable audio variant.
type AssetLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

// ImageLink is one resolution-tagged cover art variant.
type ImageLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

// Artist is a credited artist with their role on the song.
type Artist struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Artists groups the primary credits and the full credit list.
type Artists struct {
	Primary []Artist `json:"primary"`
	All     []Artist `json:"all"`
}

// AlbumRef is the song's album reference. The service is inconsistent
// about whether album is a plain string or a nested object, so decoding
// accepts both.
type AlbumRef struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts either a bare string or an object with a name
// field.
func (a *AlbumRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.Name = name
		return nil
	}

	type albumObject AlbumRef
	var obj albumObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// Song is the catalog's canonical detail record for one track.
//
// A Song is immutable once fetched and scoped to one pipeline invocation;
// it is never shared across tracks.
type Song struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Album         AlbumRef    `json:"album"`
	Year          string      `json:"year"`
	Language      string      `json:"language"`
	Label         string      `json:"label"`
	Copyright     string      `json:"copyright"`
	URL           string      `json:"url"`
	Duration      int         `json:"duration"`
	Artists       Artists     `json:"artists"`
	DownloadLinks []AssetLink `json:"downloadUrl"`
	Images        []ImageLink `json:"image"`
}

// BestAudioURL picks the download URL for the best available asset.
//
// The first link tagged with the highest known quality tier wins. When no
// link carries that tag, the last element is used: the service sorts links
// by ascending quality, highest last. An empty link list yields "".
func (s *Song) BestAudioURL() string {
	for _, link := range s.DownloadLinks {
		if link.Quality == HighestQuality {
			return link.URL
		}
	}
	if n := len(s.DownloadLinks); n > 0 {
		return s.DownloadLinks[n-1].URL
	}
	return ""
}

// BestImageURL picks the cover art URL using the same two-tier rule as
// BestAudioURL. "" means the song has no cover art, which is not a
// failure.
func (s *Song) BestImageURL() string {
	for _, img := range s.Images {
		if img.Quality == PreferredImageQuality {
			return img.URL
		}
	}
	if n := len(s.Images); n > 0 {
		return s.Images[n-1].URL
	}
	return ""
}

// PrimaryArtists returns the comma-joined primary artist names in
// service-provided order, or "Unknown" when the primary list is empty.
func (s *Song) PrimaryArtists() string {
	if names := joinArtists(s.Artists.Primary); names != "" {
		return names
	}
	return "Unknown"
}

// ToTagSet flattens the detail record into the tag fields embedded in the
// output file.
func (s *Song) ToTagSet() *model.TagSet {
	artist := s.PrimaryArtists()

	albumArtist := joinArtists(filterByRole(s.Artists.All, "music", "composer"))
	if albumArtist == "" {
		albumArtist = artist
	}

	return &model.TagSet{
		Title:           s.Name,
		Artist:          artist,
		Album:           s.Album.Name,
		Year:            s.Year,
		AlbumArtist:     albumArtist,
		Language:        titleCase(s.Language),
		Composers:       joinArtists(filterByRole(s.Artists.All, "lyricist")),
		Label:           s.Label,
		Copyright:       s.Copyright,
		URL:             s.URL,
		DurationSeconds: s.Duration,
		CoverURL:        s.BestImageURL(),
	}
}

func filterByRole(artists []Artist, roles ...string) []Artist {
	var out []Artist
	for _, a := range artists {
		for _, role := range roles {
			if a.Role == role {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func joinArtists(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// titleCase uppercases the first letter of each space-separated word,
// e.g. "hindi" becomes "Hindi".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
