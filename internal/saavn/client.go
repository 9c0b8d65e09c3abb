package saavn

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mploader/mploader/internal/http"
)

// DefaultBaseURL is the public JioSaavn API proxy used when no base URL is
// configured.
const DefaultBaseURL = "https://saavn.sumit.co"

// Client performs search and detail lookups against the catalog.
//
// Client is stateless apart from the shared HTTP session and is safe for
// concurrent use by multiple workers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Candidate is one search hit; only the opaque catalog identifier is
// carried forward to the detail lookup.
type Candidate struct {
	ID string `json:"id"`
}

type resultGroup struct {
	Results []Candidate `json:"results"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Songs    resultGroup `json:"songs"`
		TopQuery resultGroup `json:"topQuery"`
	} `json:"data"`
}

// Search looks up a query and returns at most one candidate match.
//
// The first entry of the "songs" result group is preferred; if that group
// is empty, the first "top query" entry is used instead. Returning
// (nil, nil) means no match was found, which is a normal outcome rather
// than an error. Transport and decode failures are returned as errors.
func (c *Client) Search(ctx context.Context, query string) (*Candidate, error) {
	searchURL := fmt.Sprintf("%s/api/search?query=%s", c.baseURL, url.QueryEscape(query))

	var resp searchResponse
	if err := c.httpClient.GetJSON(ctx, searchURL, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, nil
	}

	if results := resp.Data.Songs.Results; len(results) > 0 {
		return &results[0], nil
	}

	// Ambiguous queries often land only in the top-query group.
	if results := resp.Data.TopQuery.Results; len(results) > 0 {
		return &results[0], nil
	}

	return nil, nil
}

type songResponse struct {
	Success bool   `json:"success"`
	Data    []Song `json:"data"`
}

// SongDetails retrieves the full detail record for a matched song,
// including download and image links.
//
// The same absence/error duality as Search applies: (nil, nil) means the
// catalog has no record for the identifier.
func (c *Client) SongDetails(ctx context.Context, id string) (*Song, error) {
	detailURL := fmt.Sprintf("%s/api/songs/%s", c.baseURL, url.PathEscape(id))

	var resp songResponse
	if err := c.httpClient.GetJSON(ctx, detailURL, &resp); err != nil {
		return nil, err
	}

	if !resp.Success || len(resp.Data) == 0 {
		return nil, nil
	}

	return &resp.Data[0], nil
}
