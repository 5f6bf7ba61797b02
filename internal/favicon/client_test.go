package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstashapp/markstash-server/internal/config"
)

func newTestClient(serviceURL string) *Client {
	return NewClient(config.FaviconConfig{
		ServiceURL:  serviceURL,
		FetchTitles: true,
	}, nil)
}

func TestIconURL(t *testing.T) {
	c := newTestClient("https://icons.example.com/s2/favicons?domain=%s&sz=32")

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"https url", "https://github.com/some/repo", "https://icons.example.com/s2/favicons?domain=github.com&sz=32"},
		{"bare host", "figma.com", "https://icons.example.com/s2/favicons?domain=figma.com&sz=32"},
		{"unparseable", "http://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IconURL(tt.url))
		})
	}
}

func TestPageTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>  My Page </title></head><body>hi</body></html>"))
	}))
	defer srv.Close()

	c := newTestClient("https://icons.example.com/%s")
	title, err := c.PageTitle(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "My Page", title)
}

func TestPageTitle_NoTitleElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>no head here</body></html>"))
	}))
	defer srv.Close()

	c := newTestClient("https://icons.example.com/%s")
	title, err := c.PageTitle(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, title)
}

func TestPageTitle_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	c := newTestClient("https://icons.example.com/%s")
	_, err := c.PageTitle(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestExtractTitle_TruncatedInput(t *testing.T) {
	// A tokenizer error mid-document yields no title, not a panic.
	assert.Empty(t, extractTitle(strings.NewReader("<html><head><titl")))
}
