package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/markstashapp/markstash-server/internal/config"
	"github.com/markstashapp/markstash-server/internal/logger"
	"github.com/markstashapp/markstash-server/internal/normalize"
)

// maxTitleBytes bounds how much of a page is read when looking for its
// <title>. Titles live in <head>, so 256 KiB is plenty.
const maxTitleBytes = 256 << 10

// Client resolves favicon URLs and fetches page titles for bookmark
// enrichment. All lookups are best effort.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	log         *logger.Logger
	serviceURL  string
	fetchTitles bool
}

// NewClient creates a favicon client from the favicon configuration.
func NewClient(cfg config.FaviconConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// Enrichment is background work; one request per second with a
		// small burst keeps batch imports from hammering remote sites.
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
		log:         log,
		serviceURL:  cfg.ServiceURL,
		fetchTitles: cfg.FetchTitles,
	}
}

// IconURL derives the favicon lookup URL for a bookmark URL. Accepts
// scheme-less input; returns an empty string when no host can be
// extracted.
func (c *Client) IconURL(rawURL string) string {
	normalized, err := normalize.URL(rawURL)
	if err != nil {
		return ""
	}
	host := normalize.Host(normalized)
	if host == "" {
		return ""
	}
	return fmt.Sprintf(c.serviceURL, host)
}

// TitlesEnabled reports whether page-title enrichment is configured.
func (c *Client) TitlesEnabled() bool {
	return c.fetchTitles
}

// PageTitle fetches rawURL and extracts the document title. The result
// is trimmed; an empty string with nil error means the page has no
// usable title.
func (c *Client) PageTitle(ctx context.Context, rawURL string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build title request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	return extractTitle(io.LimitReader(resp.Body, maxTitleBytes)), nil
}

// extractTitle tokenizes HTML until the first <title> element.
func extractTitle(r io.Reader) string {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			if z.Next() == html.TextToken {
				return strings.TrimSpace(z.Token().Data)
			}
			return ""
		}
	}
}
