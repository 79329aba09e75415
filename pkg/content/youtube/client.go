// Package youtube fetches a single career-guide video for a subject via the
// YouTube Data API v3, degrading to a static search-link video when the key
// is missing or the call fails.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Url          string `json:"url"`
	ThumbnailUrl string `json:"thumbnail_url,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
}

type searchResponse struct {
	Items []struct {
		Id struct {
			VideoId string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					Url string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: "https://www.googleapis.com/youtube/v3/search",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search returns the most relevant embeddable career-guide video for the
// subject. It never fails; on any problem the fallback video points at a
// YouTube search for the subject instead.
func (c *Client) Search(ctx context.Context, subject string) Video {
	if c.APIKey == "" {
		return FallbackVideo(subject)
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", subject+" career guide tutorial")
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("relevanceLanguage", "en")
	params.Set("videoEmbeddable", "true")
	params.Set("order", "relevance")
	params.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return FallbackVideo(subject)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FallbackVideo(subject)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackVideo(subject)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return FallbackVideo(subject)
	}
	if len(result.Items) == 0 || result.Items[0].Id.VideoId == "" {
		return FallbackVideo(subject)
	}

	item := result.Items[0]
	return Video{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Url:          fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id.VideoId),
		ThumbnailUrl: item.Snippet.Thumbnails.Medium.Url,
		ChannelTitle: item.Snippet.ChannelTitle,
	}
}

func FallbackVideo(subject string) Video {
	return Video{
		Title:        fmt.Sprintf("%s Career Guide", subject),
		Description:  "Career development and guidance",
		Url:          "https://www.youtube.com/results?search_query=" + url.QueryEscape(subject+" career guide"),
		ThumbnailUrl: "https://placehold.co/320x180?text=Career+Development+Guide",
		ChannelTitle: "Career Insights",
	}
}
