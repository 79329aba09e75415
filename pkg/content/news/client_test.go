package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>search results</title>
    <item>
      <title>Biology hiring surges</title>
      <link>https://news.example/1</link>
      <description>&lt;a href="x"&gt;Labs are&lt;/a&gt; expanding teams</description>
    </item>
    <item>
      <title>Second story</title>
      <link>https://news.example/2</link>
      <description></description>
    </item>
    <item><title>Third</title><link>https://news.example/3</link></item>
    <item><title>Fourth</title><link>https://news.example/4</link></item>
    <item><title>Fifth</title><link>https://news.example/5</link></item>
    <item><title>Sixth never shown</title><link>https://news.example/6</link></item>
  </channel>
</rss>`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient()
	client.BaseURL = server.URL
	return client, server
}

func TestCareerTrendsParsesFeed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); !strings.Contains(got, "Biology") {
			t.Errorf("query %q does not mention the subject", got)
		}
		w.Write([]byte(sampleFeed))
	})
	defer server.Close()

	trends := client.CareerTrends(context.Background(), "Biology")

	if len(trends) != 5 {
		t.Fatalf("want 5 trends (clamped), got %d", len(trends))
	}
	if trends[0].Title != "Biology hiring surges" {
		t.Errorf("unexpected first title %q", trends[0].Title)
	}
	if strings.Contains(trends[0].Description, "<") {
		t.Errorf("markup not stripped: %q", trends[0].Description)
	}
	if trends[1].Description != "Click to read full article" {
		t.Errorf("empty description placeholder missing: %q", trends[1].Description)
	}
	for _, trend := range trends {
		if trend.Type != "article" {
			t.Errorf("feed trend %q has type %q", trend.Title, trend.Type)
		}
		if trend.Metrics == nil {
			t.Errorf("feed trend %q has no metrics", trend.Title)
		}
	}
}

func TestCareerTrendsCachesPerSubject(t *testing.T) {
	var hits int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(sampleFeed))
	})
	defer server.Close()

	client.CareerTrends(context.Background(), "Biology")
	client.CareerTrends(context.Background(), "Biology")
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("same subject fetched %d times, want 1", got)
	}

	client.CareerTrends(context.Background(), "Art")
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("second subject should miss the cache, got %d hits", got)
	}
}

func TestCareerTrendsFallsBackOnServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	trends := client.CareerTrends(context.Background(), "Biology")
	want := FallbackTrends("Biology")
	if len(trends) != len(want) {
		t.Fatalf("want %d fallback trends, got %d", len(want), len(trends))
	}
	if trends[0].Id != "fallback-1" || trends[1].Id != "fallback-2" {
		t.Errorf("unexpected fallback ids: %q, %q", trends[0].Id, trends[1].Id)
	}
	if !strings.Contains(trends[0].Title, "Biology") {
		t.Errorf("fallback does not reference the subject: %q", trends[0].Title)
	}
}

func TestCareerTrendsFallsBackOnMalformedFeed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml"))
	})
	defer server.Close()

	trends := client.CareerTrends(context.Background(), "Art")
	if len(trends) != 2 {
		t.Fatalf("want the 2 static entries, got %d", len(trends))
	}
}

func TestSummarizeClipsLongText(t *testing.T) {
	long := strings.Repeat("a", 400)
	got := summarize(long)
	if len(got) != 153 {
		t.Errorf("want 150 chars plus ellipsis, got len %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("clipped text should end with ellipsis: %q", got)
	}
}
