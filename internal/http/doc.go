// Package http provides the shared HTTP session for catalog API requests
// and binary transfers.
//
// The Client in this package handles:
//   - User-Agent headers expected by the catalog endpoints
//   - JSON API responses via GetJSON
//   - Streaming file downloads with optional progress tracking
//
// A single Client is shared across all workers; it holds no mutable state
// beyond the underlying http.Client, which is safe for concurrent use.
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	var out apiResponse
//	err := client.GetJSON(ctx, searchURL, &out)
//
//	client.DownloadFile(ctx, assetURL, "/music/song.tmp", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
package http
