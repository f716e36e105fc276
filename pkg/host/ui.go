package host

import (
	"image"
	"image/color"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
)

// UI is a Context scoped to one region. Painting is clipped to the
// intersection of every region on the way down from the root.
type UI struct {
	ctx    *Context
	region layout.Rect
	clip   layout.Rect
}

var _ layout.Painter = (*UI)(nil)

func (u *UI) Shape(span text.Span, maxWidth float64) *text.Run {
	return u.ctx.shaper.Shape(span, maxWidth)
}

func (u *UI) Visuals() style.Visuals {
	return u.ctx.opts.Visuals
}

func (u *UI) Memory() layout.Memory {
	return u.ctx.memory
}

func (u *UI) Region() layout.Rect {
	return u.region
}

// Clip returns the rectangle painting is currently limited to.
func (u *UI) Clip() layout.Rect {
	return u.clip
}

func (u *UI) Scope(region layout.Rect) layout.Painter {
	return &UI{ctx: u.ctx, region: region, clip: u.clip.Intersect(region)}
}

func (u *UI) DrawRun(run *text.Run, origin layout.Position, c color.Color) {
	u.ctx.renderer.DrawRun(run, origin, u.clip, c)
}

func (u *UI) FillRect(r layout.Rect, c color.Color) {
	u.ctx.renderer.FillRect(r, u.clip, c)
}

func (u *UI) StrokeRect(r layout.Rect, c color.Color, width float64) {
	u.ctx.renderer.StrokeRect(r, u.clip, c, width)
}

func (u *UI) DrawImage(img image.Image, r layout.Rect) {
	u.ctx.renderer.DrawImage(img, r, u.clip)
}

// Add shows c and remembers where it landed so later clicks can reach it.
func (u *UI) Add(c layout.Control) layout.Rect {
	rect := c.Show(u)
	u.ctx.hits = append(u.ctx.hits, hit{rect: rect.Intersect(u.clip), control: c})
	return rect
}

func (u *UI) RequestDiscard(reason string) {
	u.ctx.discards = append(u.ctx.discards, reason)
}
