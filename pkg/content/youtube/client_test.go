package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleSearchResponse = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "Biology careers explained",
        "description": "Paths after a biology degree",
        "channelTitle": "Science Channel",
        "thumbnails": {"medium": {"url": "https://img.example/abc123.jpg"}}
      }
    }
  ]
}`

func TestSearchReturnsFirstVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); !strings.Contains(got, "Biology") {
			t.Errorf("query %q does not mention the subject", got)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("API key missing from request")
		}
		w.Write([]byte(sampleSearchResponse))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	video := client.Search(context.Background(), "Biology")
	if video.Title != "Biology careers explained" {
		t.Errorf("unexpected title %q", video.Title)
	}
	if video.Url != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected url %q", video.Url)
	}
	if video.ChannelTitle != "Science Channel" {
		t.Errorf("unexpected channel %q", video.ChannelTitle)
	}
}

func TestSearchWithoutKeyUsesFallback(t *testing.T) {
	client := NewClient("")

	video := client.Search(context.Background(), "Biology")
	if video != FallbackVideo("Biology") {
		t.Errorf("want fallback video, got %+v", video)
	}
	if !strings.Contains(video.Url, "search_query=") {
		t.Errorf("fallback should link to a search: %q", video.Url)
	}
}

func TestSearchFallsBackOnErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "empty result set",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"items": []}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient("test-key")
			client.BaseURL = server.URL

			video := client.Search(context.Background(), "Art")
			if video != FallbackVideo("Art") {
				t.Errorf("want fallback video, got %+v", video)
			}
		})
	}
}
