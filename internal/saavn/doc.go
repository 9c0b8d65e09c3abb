// Package saavn provides a client for the JioSaavn catalog API and the
// pure selection/projection logic applied to its detail records.
//
// # Searching and fetching details
//
// The Client wraps the two catalog calls the pipeline needs:
//
//	client := saavn.NewClient("", httpClient)
//
//	candidate, err := client.Search(ctx, "Song Title")
//	// candidate == nil with err == nil means "no match", a normal outcome
//
//	song, err := client.SongDetails(ctx, candidate.ID)
//
// Both calls distinguish absence (nil, nil) from transport or decode
// failure (nil, err); callers log the error cases distinctly.
//
// # Asset selection
//
// Song exposes deterministic selectors over its download and image links:
//
//	audioURL := song.BestAudioURL() // prefers 320kbps, falls back to last
//	coverURL := song.BestImageURL() // prefers 500x500, falls back to last
//
// The service usually orders links by ascending quality, but that ordering
// is undocumented; the preferred-tier scan is authoritative and the
// last-element fallback is only used when the preferred tier is absent.
//
// # Metadata projection
//
// ToTagSet flattens a detail record into the tag fields embedded in the
// output file:
//
//	tags := song.ToTagSet()
package saavn
