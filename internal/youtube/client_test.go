package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "github.com/strum-player/strum/internal/errors"
)

func setupTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	client := &Client{
		client:     resty.New().SetBaseURL(server.URL),
		apiKey:     "test-key",
		region:     "US",
		maxResults: 25,
	}
	return server, client
}

const searchBody = `{
	"items": [
		{"id": {"videoId": "vid1"}, "snippet": {"title": "First", "channelTitle": "Chan A"}},
		{"id": {"videoId": "vid2"}, "snippet": {"title": "Second", "channelTitle": "Chan B"}}
	]
}`

const videosBody = `{
	"items": [
		{
			"id": "vid2",
			"snippet": {"title": "Second", "channelTitle": "Chan B",
				"thumbnails": {"medium": {"url": "http://img/2.jpg"}}},
			"contentDetails": {"duration": "PT3M5S"},
			"statistics": {"viewCount": "1200"}
		},
		{
			"id": "vid1",
			"snippet": {"title": "First", "channelTitle": "Chan A",
				"thumbnails": {"default": {"url": "http://img/1.jpg"}}},
			"contentDetails": {"duration": "PT4M33S"},
			"statistics": {"viewCount": "987654"}
		}
	]
}`

func TestSearch(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search":
			if got := r.URL.Query().Get("q"); got != "test query" {
				t.Errorf("q = %q, want test query", got)
			}
			if got := r.URL.Query().Get("videoCategoryId"); got != musicCategoryID {
				t.Errorf("videoCategoryId = %q, want %s", got, musicCategoryID)
			}
			_, _ = w.Write([]byte(searchBody))
		case "/videos":
			if got := r.URL.Query().Get("id"); got != "vid1,vid2" {
				t.Errorf("id = %q, want vid1,vid2", got)
			}
			_, _ = w.Write([]byte(videosBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	defer server.Close()

	results, err := client.Search(context.Background(), "test query")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	// Search order wins over videos.list response order.
	if results[0].Track.VideoID != "vid1" || results[1].Track.VideoID != "vid2" {
		t.Errorf("order = [%s %s], want [vid1 vid2]", results[0].Track.VideoID, results[1].Track.VideoID)
	}
	if results[0].Track.Duration != "4:33" {
		t.Errorf("Duration = %q, want 4:33", results[0].Track.Duration)
	}
	if results[0].ViewCount != 987654 {
		t.Errorf("ViewCount = %d, want 987654", results[0].ViewCount)
	}
	if results[0].Track.Thumbnail != "http://img/1.jpg" {
		t.Errorf("Thumbnail = %q, want default fallback", results[0].Track.Thumbnail)
	}
}

func TestTrending(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("chart"); got != "mostPopular" {
			t.Errorf("chart = %q, want mostPopular", got)
		}
		if got := r.URL.Query().Get("regionCode"); got != "US" {
			t.Errorf("regionCode = %q, want US", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videosBody))
	})
	defer server.Close()

	results, err := client.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Trending() returned %d results, want 2", len(results))
	}
	if results[0].Track.VideoID != "vid2" {
		t.Errorf("first = %s, want vid2 (response order)", results[0].Track.VideoID)
	}
}

func TestSearchWithoutAPIKey(t *testing.T) {
	client := NewClient(Options{})
	_, err := client.Search(context.Background(), "anything")
	if !errors.Is(err, apperrors.ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestQuotaExceededMapped(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quota", "errors": [{"reason": "quotaExceeded"}]}}`))
	})
	defer server.Close()

	_, err := client.Trending(context.Background())
	if !errors.Is(err, apperrors.ErrQuotaExceeded) {
		t.Errorf("error = %v, want ErrQuotaExceeded", err)
	}
}

func TestSearchUsesCache(t *testing.T) {
	calls := 0
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search":
			calls++
			_, _ = w.Write([]byte(searchBody))
		case "/videos":
			_, _ = w.Write([]byte(videosBody))
		}
	})
	defer server.Close()
	client.cache = NewCache(time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := client.Search(context.Background(), "same query"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("search endpoint hit %d times, want 1 (cached)", calls)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT4M33S", "4:33"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:45"},
		{"PT2M", "2:00"},
		{"PT1H", "1:00:00"},
		{"P1DT2H", ""},
		{"garbage", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.iso); got != tt.want {
			t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}
