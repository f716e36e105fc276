// Package images loads and caches the bitmaps shown by image leaves.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"sync"

	"lazyflex/pkg/resource"
)

// Cache caches decoded images by source.
type Cache struct {
	fetcher resource.Fetcher
	cache   map[string]image.Image
	mu      sync.RWMutex
}

// NewCache creates a cache that loads sources other than data URIs through
// fetcher. A nil fetcher reads files and HTTP URLs as given.
func NewCache(fetcher resource.Fetcher) *Cache {
	if fetcher == nil {
		fetcher = resource.NewFetcher("")
	}
	return &Cache{fetcher: fetcher, cache: make(map[string]image.Image)}
}

// Default is the cache used by Load.
var Default = NewCache(nil)

// Load loads src from Default.
func Load(src string) (image.Image, error) {
	return Default.Load(src)
}

// Load returns the image at src: a file path, an HTTP URL or a base64 data
// URI. Decoded images are cached and the same value is returned for later
// loads.
func (c *Cache) Load(src string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.cache[src]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	var img image.Image
	var err error
	if IsDataURI(src) {
		img, err = LoadDataURI(src)
	} else {
		img, err = c.fetch(src)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[src] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Dimensions returns the width and height of the image at src.
func (c *Cache) Dimensions(src string) (width, height int, err error) {
	img, err := c.Load(src)
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

func (c *Cache) fetch(src string) (image.Image, error) {
	body, _, err := c.fetcher.Fetch(src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// IsDataURI reports whether src is a data: URI.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// LoadDataURI decodes a base64 data URI such as "data:image/png;base64,...".
func LoadDataURI(uri string) (image.Image, error) {
	if !IsDataURI(uri) {
		return nil, fmt.Errorf("not a data URI")
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("data URI has no payload")
	}
	header, payload := uri[len("data:"):comma], uri[comma+1:]
	if !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("data URI: %w", err)
	}
	return img, nil
}
