// Package render paints rectangles and shaped text onto an RGBA image
// through gg.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/text"
)

// Stats counts the paint commands issued since the last Clear.
type Stats struct {
	Fills   int
	Strokes int
	Runs    int
	Images  int
	Clipped int // commands skipped because they fell outside their clip
}

type Renderer struct {
	context *gg.Context
	target  *image.RGBA
	stats   Stats
}

func NewRenderer(width, height int) *Renderer {
	return NewRendererFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRendererFor paints directly into target.
func NewRendererFor(target *image.RGBA) *Renderer {
	return &Renderer{context: gg.NewContextForRGBA(target), target: target}
}

// Bounds returns the full drawable area.
func (r *Renderer) Bounds() layout.Rect {
	b := r.target.Bounds()
	return layout.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear fills the whole target with c and resets the stats.
func (r *Renderer) Clear(c color.Color) {
	r.context.ResetClip()
	r.context.SetColor(c)
	r.context.Clear()
	r.stats = Stats{}
}

// Stats returns the paint commands issued since the last Clear.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// FillRect fills rect with c, clipped to clip.
func (r *Renderer) FillRect(rect, clip layout.Rect, c color.Color) {
	if rect.Empty() {
		return
	}
	r.withClip(clip, rect, func() {
		r.context.SetColor(c)
		r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		r.context.Fill()
		r.stats.Fills++
	})
}

// StrokeRect outlines rect with a line of the given width drawn inside it.
func (r *Renderer) StrokeRect(rect, clip layout.Rect, c color.Color, width float64) {
	if rect.Empty() || width <= 0 {
		return
	}
	r.withClip(clip, rect, func() {
		r.context.SetColor(c)
		r.context.SetLineWidth(width)
		r.context.DrawRectangle(rect.X+width/2, rect.Y+width/2, rect.Width-width, rect.Height-width)
		r.context.Stroke()
		r.stats.Strokes++
	})
}

// DrawRun paints every line of run with its top-left corner at origin.
func (r *Renderer) DrawRun(run *text.Run, origin layout.Position, clip layout.Rect, c color.Color) {
	if run == nil {
		return
	}
	w, h := run.Size()
	bounds := layout.RectFromMinSize(origin, layout.Size{Width: w, Height: h})
	r.withClip(clip, bounds, func() {
		r.context.SetFontFace(run.Face())
		r.context.SetColor(c)
		for i, line := range run.Lines() {
			r.context.DrawString(line.Text, origin.X, origin.Y+run.Baseline(i))
		}
		r.stats.Runs++
	})
}

// DrawImage paints img scaled to fill rect. Scaling is bilinear and happens
// on integer pixel bounds.
func (r *Renderer) DrawImage(img image.Image, rect, clip layout.Rect) {
	if img == nil || rect.Empty() {
		return
	}
	w, h := int(math.Round(rect.Width)), int(math.Round(rect.Height))
	if w <= 0 || h <= 0 {
		return
	}
	r.withClip(clip, rect, func() {
		src := img
		if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
			scaled := image.NewRGBA(image.Rect(0, 0, w, h))
			draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
			src = scaled
		}
		r.context.DrawImage(src, int(math.Round(rect.X)), int(math.Round(rect.Y)))
		r.stats.Images++
	})
}

// withClip runs paint with clipping to clip. gg's mask is not restored by
// Pop, so the mask is set and reset around each command, and only when
// bounds actually cross the clip edge.
func (r *Renderer) withClip(clip, bounds layout.Rect, paint func()) {
	if clip.ContainsRect(bounds) {
		paint()
		return
	}
	if clip.Intersect(bounds).Empty() {
		r.stats.Clipped++
		return
	}
	r.context.ClearPath()
	r.context.DrawRectangle(clip.X, clip.Y, clip.Width, clip.Height)
	r.context.Clip()
	paint()
	r.context.ResetClip()
}

// Image returns the render target.
func (r *Renderer) Image() *image.RGBA {
	return r.target
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}
