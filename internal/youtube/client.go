// Package youtube provides the HTTP client for the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	apperrors "github.com/strum-player/strum/internal/errors"
)

const (
	baseURL        = "https://www.googleapis.com/youtube/v3"
	requestTimeout = 30 * time.Second

	// musicCategoryID is the YouTube category for music videos.
	musicCategoryID = "10"
)

// Client is the HTTP client for interacting with the YouTube Data API.
type Client struct {
	client     *resty.Client
	apiKey     string
	region     string
	maxResults int
	cache      *Cache
}

// Options configures a Client.
type Options struct {
	APIKey     string
	Region     string
	MaxResults int
	Cache      *Cache // nil disables response caching
}

// NewClient creates a new YouTube API client with sensible defaults.
func NewClient(opts Options) *Client {
	maxResults := opts.MaxResults
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 25
	}
	region := opts.Region
	if region == "" {
		region = "US"
	}
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout).
			SetRetryCount(2).
			SetRetryWaitTime(500 * time.Millisecond),
		apiKey:     opts.APIKey,
		region:     region,
		maxResults: maxResults,
		cache:      opts.Cache,
	}
}

// Search finds music videos matching the query. Results carry durations
// and view counts, which the search endpoint does not return, so each
// search costs a second videos.list call.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrNoAPIKey
	}

	type searchKey struct {
		Op    string
		Query string
		Max   int
	}
	key := searchKey{Op: "search", Query: query, Max: c.maxResults}
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":            "snippet",
			"type":            "video",
			"videoCategoryId": musicCategoryID,
			"maxResults":      fmt.Sprint(c.maxResults),
			"q":               query,
			"key":             c.apiKey,
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, c.apiErrorFrom(resp)
	}

	var search searchResponse
	if err := json.Unmarshal(resp.Body(), &search); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	results, err := c.videosByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	c.cache.Put(key, results)
	return results, nil
}

// Trending fetches the most popular music videos for the configured region.
func (c *Client) Trending(ctx context.Context) ([]Result, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrNoAPIKey
	}

	type trendingKey struct {
		Op     string
		Region string
		Max    int
	}
	key := trendingKey{Op: "trending", Region: c.region, Max: c.maxResults}
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":            "snippet,contentDetails,statistics",
			"chart":           "mostPopular",
			"videoCategoryId": musicCategoryID,
			"regionCode":      c.region,
			"maxResults":      fmt.Sprint(c.maxResults),
			"key":             c.apiKey,
		}).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, c.apiErrorFrom(resp)
	}

	var videos videosResponse
	if err := json.Unmarshal(resp.Body(), &videos); err != nil {
		return nil, fmt.Errorf("failed to parse trending response: %w", err)
	}

	results := make([]Result, 0, len(videos.Items))
	for _, item := range videos.Items {
		results = append(results, item.result())
	}

	c.cache.Put(key, results)
	return results, nil
}

// videosByID fetches full metadata for the given video IDs, preserving
// their order.
func (c *Client) videosByID(ctx context.Context, ids []string) ([]Result, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails,statistics",
			"id":   strings.Join(ids, ","),
			"key":  c.apiKey,
		}).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, c.apiErrorFrom(resp)
	}

	var videos videosResponse
	if err := json.Unmarshal(resp.Body(), &videos); err != nil {
		return nil, fmt.Errorf("failed to parse videos response: %w", err)
	}

	byID := make(map[string]videoItem, len(videos.Items))
	for _, item := range videos.Items {
		byID[item.ID] = item
	}
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			results = append(results, item.result())
		}
	}
	return results, nil
}

// apiErrorFrom maps an API error response onto the app's sentinel errors
// where the reason is recognized.
func (c *Client) apiErrorFrom(resp *resty.Response) error {
	var body apiError
	reason := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil && len(body.Error.Errors) > 0 {
		reason = body.Error.Errors[0].Reason
	}
	log.Debug().
		Int("status", resp.StatusCode()).
		Str("reason", reason).
		Msg("youtube api error")

	switch reason {
	case "quotaExceeded", "dailyLimitExceeded":
		return apperrors.ErrQuotaExceeded
	case "keyInvalid":
		return apperrors.ErrNoAPIKey
	case "videoNotFound":
		return apperrors.ErrVideoNotFound
	}
	if resp.StatusCode() == 429 {
		return apperrors.ErrRateLimited
	}
	if body.Error.Message != "" {
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode(), body.Error.Message)
	}
	return fmt.Errorf("api returned status %d: %s", resp.StatusCode(), resp.Status())
}
