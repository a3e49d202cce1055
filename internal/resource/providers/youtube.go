package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

// YouTube searches the YouTube Data API for tutorial videos.
type YouTube struct {
	client
	// BaseURL is overridable for tests.
	BaseURL string
}

func NewYouTube(apiKey string) *YouTube {
	return &YouTube{client: newClient(apiKey), BaseURL: youtubeSearchURL}
}

func (y *YouTube) Name() string { return "youtube" }

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

func (y *YouTube) Search(ctx context.Context, query string, maxResults int) ([]resource.Record, error) {
	if !y.configured() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", query+" tutorial course")
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("order", "relevance")
	q.Set("videoDuration", "medium")
	q.Set("key", y.apiKey)

	var parsed youtubeSearchResponse
	if err := y.getJSON(ctx, y.BaseURL, q, false, &parsed); err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	records := make([]resource.Record, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		records = append(records, resource.Record{
			Title:       item.Snippet.Title,
			Description: truncate(item.Snippet.Description, 200),
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Platform:    "YouTube",
			Duration:    "Variable",
			Rating:      "4.5",
			Instructor:  item.Snippet.ChannelTitle,
		})
	}

	return records, nil
}
