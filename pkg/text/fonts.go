package text

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontConfig holds paths to font files used for text shaping and painting.
// An empty path selects the matching embedded Go font.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Monospace  string
	MonoBold   string
}

// DefaultFontConfig uses the embedded Go fonts for every style.
func DefaultFontConfig() FontConfig {
	return FontConfig{}
}

// FontPath returns the font path for the given style combination, or "" when
// the embedded font should be used.
func (fc FontConfig) FontPath(bold, italic, mono bool) string {
	if mono {
		if bold && fc.MonoBold != "" {
			return fc.MonoBold
		}
		return fc.Monospace
	}
	if bold && italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if bold {
		return fc.Bold
	}
	if italic {
		return fc.Italic
	}
	return fc.Regular
}

type faceKey struct {
	bold, italic, mono bool
	size               float64
}

// Faces loads and caches font faces per style and size.
type Faces struct {
	config FontConfig
	faces  map[faceKey]font.Face
	fonts  map[string]*truetype.Font
}

// NewFaces returns a face cache for config.
func NewFaces(config FontConfig) *Faces {
	return &Faces{
		config: config,
		faces:  make(map[faceKey]font.Face),
		fonts:  make(map[string]*truetype.Font),
	}
}

// Face returns the face for span's style and size.
func (f *Faces) Face(span Span) (font.Face, error) {
	key := faceKey{bold: span.Bold, italic: span.Italic, mono: span.Mono, size: span.size()}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	var face font.Face
	if path := f.config.FontPath(key.bold, key.italic, key.mono); path != "" {
		loaded, err := gg.LoadFontFace(path, key.size)
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", path, err)
		}
		face = loaded
	} else {
		parsed, err := f.embedded(key)
		if err != nil {
			return nil, err
		}
		face = truetype.NewFace(parsed, &truetype.Options{Size: key.size})
	}
	f.faces[key] = face
	return face, nil
}

func (f *Faces) embedded(key faceKey) (*truetype.Font, error) {
	name, ttf := "goregular", goregular.TTF
	switch {
	case key.mono && key.bold:
		name, ttf = "gomonobold", gomonobold.TTF
	case key.mono:
		name, ttf = "gomono", gomono.TTF
	case key.bold && key.italic:
		name, ttf = "gobolditalic", gobolditalic.TTF
	case key.bold:
		name, ttf = "gobold", gobold.TTF
	case key.italic:
		name, ttf = "goitalic", goitalic.TTF
	}
	if parsed, ok := f.fonts[name]; ok {
		return parsed, nil
	}
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font %s: %w", name, err)
	}
	f.fonts[name] = parsed
	return parsed, nil
}
