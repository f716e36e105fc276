package widgets

import (
	"image/color"
	"math"

	"lazyflex/pkg/layout"
)

// Swatch is a filled box with a fixed natural size, shrunk to fit the space
// it is offered.
type Swatch struct {
	once  layout.Once
	size  layout.Size
	color color.Color
}

func NewSwatch(size layout.Size, c color.Color) *Swatch {
	return &Swatch{size: size, color: c}
}

func (s *Swatch) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	if !s.once.Take("measure swatch") {
		return layout.Size{}, layout.Nothing
	}
	size := layout.Size{
		Width:  math.Max(0, math.Min(s.size.Width, max.Width)),
		Height: math.Max(0, math.Min(s.size.Height, max.Height)),
	}
	return size, &measuredSwatch{color: s.color}
}

type measuredSwatch struct {
	once  layout.Once
	color color.Color
}

func (m *measuredSwatch) Draw(region layout.Rect, ui layout.Painter) {
	if !m.once.Take("draw swatch") {
		return
	}
	ui.FillRect(region, m.color)
}
