package saavn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "github.com/mploader/mploader/internal/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, httpclient.NewClient()), server
}

func TestClient_Search(t *testing.T) {
	t.Run("prefers songs result group", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/search" {
				t.Errorf("path = %s, want /api/search", r.URL.Path)
			}
			if got := r.URL.Query().Get("query"); got != "some song" {
				t.Errorf("query = %q, want %q", got, "some song")
			}
			w.Write([]byte(`{
				"success": true,
				"data": {
					"songs": {"results": [{"id": "song-1"}, {"id": "song-2"}]},
					"topQuery": {"results": [{"id": "top-1"}]}
				}
			}`))
		})

		candidate, err := client.Search(context.Background(), "some song")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if candidate == nil || candidate.ID != "song-1" {
			t.Errorf("candidate = %+v, want id song-1", candidate)
		}
	})

	t.Run("falls back to top query group", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"success": true,
				"data": {
					"songs": {"results": []},
					"topQuery": {"results": [{"id": "top-1"}]}
				}
			}`))
		})

		candidate, err := client.Search(context.Background(), "ambiguous")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if candidate == nil || candidate.ID != "top-1" {
			t.Errorf("candidate = %+v, want id top-1", candidate)
		}
	})

	t.Run("empty groups mean absent, not error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "data": {"songs": {"results": []}, "topQuery": {"results": []}}}`))
		})

		candidate, err := client.Search(context.Background(), "nothing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if candidate != nil {
			t.Errorf("candidate = %+v, want nil", candidate)
		}
	})

	t.Run("unsuccessful response means absent", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false}`))
		})

		candidate, err := client.Search(context.Background(), "query")
		if err != nil || candidate != nil {
			t.Errorf("got (%+v, %v), want (nil, nil)", candidate, err)
		}
	})

	t.Run("malformed body is a decode error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": tr`))
		})

		candidate, err := client.Search(context.Background(), "query")
		if err == nil {
			t.Fatal("expected decode error")
		}
		if candidate != nil {
			t.Errorf("candidate = %+v, want nil on error", candidate)
		}
	})

	t.Run("server error is a transport error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		if _, err := client.Search(context.Background(), "query"); err == nil {
			t.Fatal("expected transport error")
		}
	})
}

func TestClient_SongDetails(t *testing.T) {
	t.Run("returns first record", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/songs/abc123" {
				t.Errorf("path = %s, want /api/songs/abc123", r.URL.Path)
			}
			w.Write([]byte(`{
				"success": true,
				"data": [{
					"id": "abc123",
					"name": "Song Name",
					"album": {"name": "Album"},
					"duration": 200,
					"downloadUrl": [{"quality": "320kbps", "url": "http://cdn/320"}]
				}]
			}`))
		})

		song, err := client.SongDetails(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if song == nil || song.Name != "Song Name" || song.Duration != 200 {
			t.Errorf("song = %+v, want Song Name / 200s", song)
		}
		if url := song.BestAudioURL(); url != "http://cdn/320" {
			t.Errorf("BestAudioURL = %q, want http://cdn/320", url)
		}
	})

	t.Run("empty data means absent", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": true, "data": []}`))
		})

		song, err := client.SongDetails(context.Background(), "missing")
		if err != nil || song != nil {
			t.Errorf("got (%+v, %v), want (nil, nil)", song, err)
		}
	})
}
