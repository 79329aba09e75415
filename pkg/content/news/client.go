// Package news surfaces career trend entries for a subject from the Google
// News RSS feed. Results are cached per subject for a short window; any
// fetch or parse failure degrades to two static entries.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const maxTrends = 5

type Trend struct {
	Id          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Url         string        `json:"url"`
	Type        string        `json:"type"` // "article" or "post"
	Metrics     *TrendMetrics `json:"metrics,omitempty"`
}

type TrendMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

type Client struct {
	BaseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewClient() *Client {
	return &Client{
		BaseURL: "https://news.google.com/rss/search",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: cache.New(15*time.Minute, 30*time.Minute),
	}
}

// CareerTrends returns up to five trend entries for the subject. The feed is
// hit at most once per subject per cache window.
func (c *Client) CareerTrends(ctx context.Context, subject string) []Trend {
	if cached, found := c.cache.Get(subject); found {
		return cached.([]Trend)
	}

	trends, err := c.fetch(ctx, subject)
	if err != nil {
		return FallbackTrends(subject)
	}

	c.cache.Set(subject, trends, cache.DefaultExpiration)
	return trends
}

func (c *Client) fetch(ctx context.Context, subject string) ([]Trend, error) {
	query := url.Values{}
	query.Set("q", subject+" career trends")
	query.Set("hl", "en-US")
	query.Set("gl", "US")
	query.Set("ceid", "US:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	if len(feed.Channel.Items) == 0 {
		return nil, fmt.Errorf("news feed contained no items")
	}

	items := feed.Channel.Items
	if len(items) > maxTrends {
		items = items[:maxTrends]
	}

	trends := make([]Trend, 0, len(items))
	for i, item := range items {
		trends = append(trends, Trend{
			Id:          fmt.Sprintf("news-%d", i),
			Title:       item.Title,
			Description: summarize(item.Description),
			Url:         item.Link,
			Type:        "article",
			Metrics: &TrendMetrics{
				LikeCount:    rand.Intn(100) + 10,
				RetweetCount: rand.Intn(20),
				ReplyCount:   rand.Intn(10),
			},
		})
	}
	return trends, nil
}

// summarize strips markup from a feed description and clips it for card
// display.
func summarize(description string) string {
	text := strings.TrimSpace(htmlTagRegex.ReplaceAllString(description, ""))
	if text == "" {
		return "Click to read full article"
	}
	if runes := []rune(text); len(runes) > 150 {
		text = string(runes[:150]) + "..."
	}
	return text
}

// FallbackTrends is the static two-entry feed used when the live fetch
// fails.
func FallbackTrends(subject string) []Trend {
	return []Trend{
		{
			Id:          "fallback-1",
			Title:       fmt.Sprintf("The Future of %s Careers", subject),
			Description: fmt.Sprintf("Explore emerging opportunities and skills needed for a successful career in %s.", subject),
			Url:         "https://www.google.com/search?q=" + url.QueryEscape(subject+" career trends"),
			Type:        "article",
			Metrics: &TrendMetrics{
				LikeCount:    42,
				RetweetCount: 5,
				ReplyCount:   2,
			},
		},
		{
			Id:          "fallback-2",
			Title:       fmt.Sprintf("Top Skills for %s in 2025", subject),
			Description: "Stay ahead of the curve by mastering these in-demand skills.",
			Url:         "https://www.google.com/search?q=" + url.QueryEscape(subject+" top skills 2025"),
			Type:        "post",
			Metrics: &TrendMetrics{
				LikeCount:    89,
				RetweetCount: 12,
				ReplyCount:   8,
			},
		},
	}
}
