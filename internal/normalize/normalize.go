// Package normalize provides URL normalization and display-name fallbacks.
package normalize

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/markstashapp/markstash-server/internal/errors"
)

//nolint:gochecknoglobals // Title caser is immutable and safe for concurrent use.
var titleCaser = cases.Title(language.Und)

// URL ensures the raw input carries an http(s) scheme and parses as a
// URL with a host. Returns the normalized form or a validation error.
func URL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.Validation("url is required")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", errors.Validationf("invalid url: %s", raw)
	}

	return raw, nil
}

// Host extracts the hostname from a normalized URL.
// Returns an empty string when the URL cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// TitleFromURL derives a display title from a URL's hostname:
// the first label after any leading "www.", title-cased.
// Falls back to the literal URL when no hostname can be parsed.
func TitleFromURL(rawURL string) string {
	host := Host(rawURL)
	if host == "" {
		return rawURL
	}

	host = strings.TrimPrefix(host, "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return rawURL
	}

	return titleCaser.String(label)
}
