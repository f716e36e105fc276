// Package widgets provides the leaves and wrappers that go inside layout
// containers: text, frames, lazily sized controls and the controls
// themselves.
package widgets

import (
	"lazyflex/pkg/layout"
	"lazyflex/pkg/text"
)

// Text is a run of styled text. It is shaped once, while measuring, and the
// shaped run is painted unchanged.
type Text struct {
	once    layout.Once
	span    text.Span
	heading bool
}

// NewText creates a text leaf in the body style.
func NewText(s string) *Text {
	return &Text{span: text.Span{Text: s}}
}

// NewRichText creates a text leaf from a fully styled span.
func NewRichText(span text.Span) *Text {
	return &Text{span: span}
}

// Heading uses the heading size unless an explicit size was set.
func (t *Text) Heading() *Text {
	t.heading = true
	return t
}

func (t *Text) Bold() *Text {
	t.span.Bold = true
	return t
}

func (t *Text) Italic() *Text {
	t.span.Italic = true
	return t
}

func (t *Text) Monospace() *Text {
	t.span.Mono = true
	return t
}

// Size sets the font size in points.
func (t *Text) Size(points float64) *Text {
	t.span.Size = points
	return t
}

// NoWrap keeps each line of the text on one line.
func (t *Text) NoWrap() *Text {
	t.span.NoWrap = true
	return t
}

func (t *Text) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	size, m := t.MeasureAs(max, ui)
	return size, m
}

// MeasureAs shapes the text against the offered width. The height is not
// constrained.
func (t *Text) MeasureAs(max layout.Size, ui layout.Shaper) (layout.Size, *MeasuredText) {
	if !t.once.Take("measure text") {
		return layout.Size{}, &MeasuredText{}
	}
	span := t.span
	if span.Size == 0 {
		v := ui.Visuals()
		span.Size = v.FontSize
		if t.heading {
			span.Size = v.HeadingSize
		}
	}
	run := ui.Shape(span, max.Width)
	w, h := run.Size()
	return layout.Size{Width: w, Height: h}, &MeasuredText{run: run}
}

// MeasuredText holds the run shaped while measuring.
type MeasuredText struct {
	once layout.Once
	run  *text.Run
}

// Run returns the shaped run.
func (m *MeasuredText) Run() *text.Run {
	return m.run
}

// Draw paints the run at the region's origin in the foreground color.
func (m *MeasuredText) Draw(region layout.Rect, ui layout.Painter) {
	if !m.once.Take("draw text") || m.run == nil {
		return
	}
	ui.DrawRun(m.run, region.Min(), ui.Visuals().Text)
}
