// Package resource fetches scene scripts and images from files or the
// network.
package resource

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const userAgent = "lazyflex/0.1 (compatible; Go)"

// httpClient is a shared HTTP client with reasonable timeouts.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Fetcher retrieves resources by URI.
type Fetcher interface {
	Fetch(uri string) (body []byte, contentType string, err error)
}

// DefaultFetcher reads local files and fetches HTTP/HTTPS URLs, resolving
// relative URIs against a base URL or directory.
type DefaultFetcher struct {
	base string
}

// NewFetcher creates a DefaultFetcher. base may be empty, a URL or a
// directory.
func NewFetcher(base string) *DefaultFetcher {
	return &DefaultFetcher{base: base}
}

// Fetch retrieves the resource at uri.
func (f *DefaultFetcher) Fetch(uri string) ([]byte, string, error) {
	resolved := f.Resolve(uri)
	if IsNetworkURL(resolved) {
		return fetchHTTP(resolved)
	}
	body, err := os.ReadFile(strings.TrimPrefix(resolved, "file://"))
	if err != nil {
		return nil, "", err
	}
	return body, "", nil
}

// Resolve returns uri made absolute against the fetcher's base.
func (f *DefaultFetcher) Resolve(uri string) string {
	switch {
	case f.base == "" || IsNetworkURL(uri) || filepath.IsAbs(uri):
		return uri
	case IsNetworkURL(f.base):
		return ResolveURL(f.base, uri)
	default:
		return filepath.Join(f.base, uri)
	}
}

// fetchHTTP retrieves the content at rawURL.
func fetchHTTP(rawURL string) (body []byte, contentType string, err error) {
	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// FetchScript fetches a script and returns its source. Network responses
// must carry a text or JavaScript content type.
func (f *DefaultFetcher) FetchScript(uri string) (string, error) {
	body, contentType, err := f.Fetch(uri)
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(contentType)
	if ct != "" && !strings.HasPrefix(ct, "text/") && !strings.Contains(ct, "javascript") {
		return "", fmt.Errorf("unexpected content type for script: %s", contentType)
	}
	return string(body), nil
}

// ResolveURL resolves a possibly-relative URI against a base URL.
// If ref is already absolute, it is returned as-is.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// IsNetworkURL returns true if the string looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
