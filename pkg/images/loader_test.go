package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"lazyflex/pkg/resource"
)

func redPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func dataURI(t *testing.T) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(redPNG(t, 2, 2))
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,abc") {
		t.Error("expected true for data URI")
	}
	if IsDataURI("/path/to/file.png") {
		t.Error("expected false for file path")
	}
	if IsDataURI("") {
		t.Error("expected false for empty string")
	}
}

func TestLoadDataURI(t *testing.T) {
	img, err := LoadDataURI(dataURI(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLoadDataURI_Invalid(t *testing.T) {
	tests := []string{
		"not-a-data-uri",
		"data:image/png;base64", // no comma
		"data:image/png,abc",    // not base64
		"data:image/png;base64,!!!invalid-base64!!!",
		"data:image/png;base64,aGVsbG8=", // valid base64 but not an image
	}
	for _, uri := range tests {
		if _, err := LoadDataURI(uri); err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}

func TestCache_LoadFileIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	if err := os.WriteFile(path, redPNG(t, 3, 5), 0644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(nil)
	img, err := c.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img2, err := c.Load(path)
	if err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if img != img2 {
		t.Error("expected cached image to be the same value")
	}
	if c.Len() != 1 {
		t.Errorf("cache len = %d, want 1", c.Len())
	}

	w, h, err := c.Dimensions(path)
	if err != nil || w != 3 || h != 5 {
		t.Errorf("dimensions = %dx%d, %v; want 3x5", w, h, err)
	}
}

func TestCache_Errors(t *testing.T) {
	c := NewCache(nil)
	if _, err := c.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	os.WriteFile(garbage, []byte("hello"), 0644)
	if _, err := c.Load(garbage); err == nil {
		t.Error("expected a decode error")
	}
	if c.Len() != 0 {
		t.Errorf("failed loads must not be cached, len = %d", c.Len())
	}
}

func TestLoad_UsesDefaultCache(t *testing.T) {
	uri := dataURI(t)
	img, err := Load(uri)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := Default.Load(uri)
	if img != again {
		t.Error("Load should share the default cache")
	}
}

func TestCache_RelativeToFetcherBase(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "red.png"), redPNG(t, 4, 4), 0644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(resource.NewFetcher(dir))
	if w, h, err := c.Dimensions("red.png"); err != nil || w != 4 || h != 4 {
		t.Errorf("dimensions = %dx%d, %v; want 4x4", w, h, err)
	}
}
