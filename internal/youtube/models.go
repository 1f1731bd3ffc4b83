package youtube

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/strum-player/strum/internal/core"
)

// Wire shapes for the YouTube Data API v3 responses. Only the fields we
// read are declared.

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string  `json:"id"`
	Snippet        snippet `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnails   struct {
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
		Default struct {
			URL string `json:"url"`
		} `json:"default"`
	} `json:"thumbnails"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func (s snippet) thumbnail() string {
	if s.Thumbnails.Medium.URL != "" {
		return s.Thumbnails.Medium.URL
	}
	return s.Thumbnails.Default.URL
}

// Result is a search or trending entry: the playable track plus display
// metadata that is not part of the playback domain.
type Result struct {
	Track     core.Track
	ViewCount uint64
}

func (v videoItem) result() Result {
	views, _ := strconv.ParseUint(v.Statistics.ViewCount, 10, 64)
	return Result{
		Track: core.Track{
			VideoID:      v.ID,
			Title:        v.Snippet.Title,
			ChannelTitle: v.Snippet.ChannelTitle,
			Thumbnail:    v.Snippet.thumbnail(),
			Duration:     FormatDuration(v.ContentDetails.Duration),
		},
		ViewCount: views,
	}
}

// FormatDuration converts an ISO 8601 duration like "PT4M33S" into a
// display string like "4:33" (or "1:02:03" past the hour). Unparsable
// input yields an empty string.
func FormatDuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok {
		return ""
	}

	var h, m, s int
	num := ""
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'H' || r == 'M' || r == 'S':
			n, err := strconv.Atoi(num)
			if err != nil {
				return ""
			}
			switch r {
			case 'H':
				h = n
			case 'M':
				m = n
			case 'S':
				s = n
			}
			num = ""
		default:
			return ""
		}
	}

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
