package layout

import "math"

// Layout is a row or column container before measurement. Children are
// arranged and painted in insertion order.
type Layout struct {
	once     Once
	params   Params
	children []Measurer
}

// New creates an empty container.
func New(params Params) *Layout {
	return &Layout{params: params}
}

// With appends a child and returns the container for chaining. Nil children
// are ignored.
func (l *Layout) With(child Measurer) *Layout {
	if child != nil {
		l.children = append(l.children, child)
	}
	return l
}

// Params returns the container's parameters.
func (l *Layout) Params() Params {
	return l.params
}

// Len returns the number of children.
func (l *Layout) Len() int {
	return len(l.children)
}

// Measure implements Measurer.
func (l *Layout) Measure(max Size, ui Shaper) (Size, Drawer) {
	size, m := l.MeasureAs(max, ui)
	return size, m
}

// MeasureAs offers every child an equal share of the main axis and the full
// cross axis. The natural size is the sum of the children's main sizes and
// the largest of their cross sizes.
func (l *Layout) MeasureAs(max Size, ui Shaper) (Size, *MeasuredLayout) {
	if !l.once.Take("measure layout") {
		return Size{}, &MeasuredLayout{params: l.params}
	}
	children := l.children
	l.children = nil

	measured := &MeasuredLayout{params: l.params}
	if len(children) == 0 {
		return Size{}, measured
	}

	d := l.params.Direction
	share := d.size(nonNegative(d.main(max))/float64(len(children)), nonNegative(d.cross(max)))

	var mainSum, crossMax float64
	measured.children = make([]measuredChild, 0, len(children))
	for _, child := range children {
		size, drawer := child.Measure(share, ui)
		size = Size{Width: nonNegative(size.Width), Height: nonNegative(size.Height)}
		if drawer == nil {
			drawer = Nothing
		}
		measured.children = append(measured.children, measuredChild{size: size, drawer: drawer})
		mainSum += d.main(size)
		crossMax = math.Max(crossMax, d.cross(size))
	}
	return d.size(mainSum, crossMax), measured
}

type measuredChild struct {
	size   Size
	drawer Drawer
}

// MeasuredLayout is a container after measurement: each child's natural
// size paired with its Drawer.
type MeasuredLayout struct {
	once     Once
	params   Params
	children []measuredChild
}

// Len returns the number of measured children.
func (m *MeasuredLayout) Len() int {
	return len(m.children)
}

// Sizes returns the measured size of every child in order.
func (m *MeasuredLayout) Sizes() []Size {
	sizes := make([]Size, len(m.children))
	for i, c := range m.children {
		sizes[i] = c.size
	}
	return sizes
}

// Draw places every child inside region and draws it into a scope clipped to
// its rectangle, first child first.
func (m *MeasuredLayout) Draw(region Rect, ui Painter) {
	if !m.once.Take("draw layout") {
		return
	}
	children := m.children
	m.children = nil

	sizes := make([]Size, len(children))
	for i, c := range children {
		sizes[i] = c.size
	}
	rects := Arrange(m.params, region, sizes)
	for i, c := range children {
		c.drawer.Draw(rects[i], ui.Scope(rects[i]))
	}
}

// Arrange computes the rectangle of each child inside region.
//
// Children stay contiguous on the main axis. Start packs them from the
// leading edge; End and Center shift the whole block by the leftover space
// or half of it. Leftover and cross slack never go below zero, so children
// that overflow the region start at its leading edge.
func Arrange(p Params, region Rect, sizes []Size) []Rect {
	d := p.Direction
	availMain := d.main(region.Size())
	availCross := d.cross(region.Size())

	var consumed float64
	for _, s := range sizes {
		consumed += d.main(s)
	}

	var cursor float64
	switch p.MainAxisAlignment {
	case End:
		cursor = slack(availMain, consumed)
	case Center:
		cursor = slack(availMain, consumed) / 2
	}

	origin := region.Min()
	rects := make([]Rect, len(sizes))
	for i, s := range sizes {
		var cross float64
		switch p.CrossAxisAlignment {
		case End:
			cross = slack(availCross, d.cross(s))
		case Center:
			cross = slack(availCross, d.cross(s)) / 2
		}
		off := d.offset(cursor, cross)
		rects[i] = RectFromMinSize(Position{X: origin.X + off.X, Y: origin.Y + off.Y}, s)
		cursor += d.main(s)
	}
	return rects
}

// slack is the space left over once used is taken from avail, clamped at zero.
// An unbounded or undefined avail leaves no slack to distribute.
func slack(avail, used float64) float64 {
	if math.IsInf(avail, 0) || math.IsNaN(avail) {
		return 0
	}
	return nonNegative(avail - used)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
