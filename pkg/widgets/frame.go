package widgets

import "lazyflex/pkg/layout"

// Frame wraps a single child and claims all the space it is offered. The
// child is drawn into the frame's own region, without any inset.
type Frame struct {
	once  layout.Once
	child layout.Measurer
}

func NewFrame(child layout.Measurer) *Frame {
	return &Frame{child: child}
}

func (f *Frame) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	size, m := f.MeasureAs(max, ui)
	return size, m
}

// MeasureAs measures the child against the full offered size and reports
// that size as its own, whatever the child asked for.
func (f *Frame) MeasureAs(max layout.Size, ui layout.Shaper) (layout.Size, *MeasuredFrame) {
	if !f.once.Take("measure frame") {
		return layout.Size{}, &MeasuredFrame{child: layout.Nothing}
	}
	child := layout.Nothing
	if f.child != nil {
		_, child = f.child.Measure(max, ui)
		if child == nil {
			child = layout.Nothing
		}
	}
	f.child = nil
	return max, &MeasuredFrame{child: child}
}

type MeasuredFrame struct {
	once  layout.Once
	child layout.Drawer
}

func (m *MeasuredFrame) Draw(region layout.Rect, ui layout.Painter) {
	if !m.once.Take("draw frame") {
		return
	}
	m.child.Draw(region, ui)
}
