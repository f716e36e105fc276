package widgets

import (
	"image"
	"math"

	"lazyflex/pkg/images"
	"lazyflex/pkg/layout"
)

// Image shows a bitmap at its pixel size, scaled down to fit the space it is
// offered while keeping its aspect ratio. A fixed size can be requested with
// SetSize.
type Image struct {
	once layout.Once
	img  image.Image
	size layout.Size
}

func NewImage(img image.Image) *Image {
	m := &Image{img: img}
	if img != nil {
		b := img.Bounds()
		m.size = layout.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
	return m
}

// LoadImage creates an image leaf from a file path or data URI through the
// shared image cache.
func LoadImage(src string) (*Image, error) {
	img, err := images.Load(src)
	if err != nil {
		return nil, err
	}
	return NewImage(img), nil
}

// SetSize overrides the natural size.
func (m *Image) SetSize(size layout.Size) *Image {
	m.size = size
	return m
}

func (m *Image) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	if !m.once.Take("measure image") {
		return layout.Size{}, layout.Nothing
	}
	size := fit(m.size, max)
	return size, &measuredImage{img: m.img, size: size}
}

// fit scales natural down uniformly until it fits within max.
func fit(natural, max layout.Size) layout.Size {
	if natural.Width <= 0 || natural.Height <= 0 {
		return layout.Size{}
	}
	scale := 1.0
	if max.Width < natural.Width {
		scale = math.Max(0, max.Width) / natural.Width
	}
	if max.Height < natural.Height {
		scale = math.Min(scale, math.Max(0, max.Height)/natural.Height)
	}
	return layout.Size{Width: natural.Width * scale, Height: natural.Height * scale}
}

type measuredImage struct {
	once layout.Once
	img  image.Image
	size layout.Size
}

// Draw paints the image at its measured size from the region's origin.
func (m *measuredImage) Draw(region layout.Rect, ui layout.Painter) {
	if !m.once.Take("draw image") || m.img == nil {
		return
	}
	ui.DrawImage(m.img, layout.RectFromMinSize(region.Min(), m.size))
}
