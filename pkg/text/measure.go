// Package text shapes styled text into immutable runs of wrapped lines.
package text

import (
	"log"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultSize is the font size used when a span does not set one.
const DefaultSize = 14.0

// Span is a run of text with a single style.
type Span struct {
	Text   string
	Size   float64 // points; zero selects DefaultSize
	Bold   bool
	Italic bool
	Mono   bool
	NoWrap bool // keep each paragraph on one line regardless of width
}

func (s Span) size() float64 {
	if s.Size <= 0 || math.IsNaN(s.Size) {
		return DefaultSize
	}
	return s.Size
}

// Line is one shaped line of a Run.
type Line struct {
	Text  string
	Width float64
}

// Run is shaped text: the lines a span wrapped into and the face that
// measured them. A Run is never modified after Shape returns it.
type Run struct {
	face       font.Face
	lines      []Line
	width      float64
	ascent     float64
	lineHeight float64
}

// Size returns the bounding size of all lines.
func (r *Run) Size() (width, height float64) {
	return r.width, r.Height()
}

// Width returns the width of the widest line.
func (r *Run) Width() float64 { return r.width }

// Height returns the total height of all lines.
func (r *Run) Height() float64 { return float64(len(r.lines)) * r.lineHeight }

// Lines returns a copy of the shaped lines.
func (r *Run) Lines() []Line {
	lines := make([]Line, len(r.lines))
	copy(lines, r.lines)
	return lines
}

// Face returns the face the run was shaped with.
func (r *Run) Face() font.Face { return r.face }

// LineHeight returns the distance between consecutive baselines.
func (r *Run) LineHeight() float64 { return r.lineHeight }

// Baseline returns the offset of line i's baseline from the top of the run.
func (r *Run) Baseline(i int) float64 {
	return r.ascent + float64(i)*r.lineHeight
}

// FaceSource provides the face for a span.
type FaceSource interface {
	Face(span Span) (font.Face, error)
}

type fixedFace struct{ face font.Face }

func (f fixedFace) Face(Span) (font.Face, error) { return f.face, nil }

// Shaper breaks spans into runs.
type Shaper struct {
	faces FaceSource

	// Logger receives face loading failures. Nil discards them.
	Logger *log.Logger
}

// NewShaper returns a shaper loading faces from config.
func NewShaper(config FontConfig) *Shaper {
	return &Shaper{faces: NewFaces(config)}
}

// Fixed returns a shaper that uses face for every span, whatever its style.
func Fixed(face font.Face) *Shaper {
	return &Shaper{faces: fixedFace{face: face}}
}

func (s *Shaper) face(span Span) font.Face {
	face, err := s.faces.Face(span)
	if err != nil || face == nil {
		if s.Logger != nil {
			s.Logger.Printf("text: %v; falling back to basic face", err)
		}
		return basicfont.Face7x13
	}
	return face
}

// Measure returns the single-line size of span, ignoring wrapping.
func (s *Shaper) Measure(span Span) (width, height float64) {
	face := s.face(span)
	return measure(face, span.Text), lineHeight(face)
}

// Shape lays span out into lines no wider than maxWidth. Height is
// unconstrained: the run grows by as many lines as the text needs. Explicit
// newlines always start a new line. A word wider than maxWidth is broken
// between runes; a line only exceeds maxWidth when a single glyph does.
// An infinite or NaN maxWidth disables wrapping.
func (s *Shaper) Shape(span Span, maxWidth float64) *Run {
	face := s.face(span)
	m := face.Metrics()
	run := &Run{
		face:       face,
		ascent:     float64(m.Ascent) / 64,
		lineHeight: lineHeight(face),
	}

	wrap := !span.NoWrap && !math.IsInf(maxWidth, 1) && !math.IsNaN(maxWidth)
	if maxWidth < 0 {
		maxWidth = 0
	}
	for _, para := range strings.Split(span.Text, "\n") {
		var lines []string
		if wrap {
			lines = breakLines(face, para, maxWidth)
		} else {
			lines = []string{para}
		}
		for _, l := range lines {
			w := measure(face, l)
			run.lines = append(run.lines, Line{Text: l, Width: w})
			run.width = math.Max(run.width, w)
		}
	}
	return run
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}

// breakLines greedily fills lines with whole words, breaking words that do
// not fit on a line of their own.
func breakLines(face font.Face, text string, maxWidth float64) []string {
	if measure(face, text) <= maxWidth {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0)
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(face, word) <= maxWidth {
			current = word
			continue
		}
		pieces := breakWord(face, word, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakWord splits word into pieces no wider than maxWidth, keeping at
// least one rune per piece.
func breakWord(face font.Face, word string, maxWidth float64) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(word); {
		_, n := utf8.DecodeRuneInString(word[i:])
		if i > start && measure(face, word[start:i+n]) > maxWidth {
			pieces = append(pieces, word[start:i])
			start = i
		}
		i += n
	}
	return append(pieces, word[start:])
}
