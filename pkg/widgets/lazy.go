package widgets

import "lazyflex/pkg/layout"

// lazyState is what a Lazy leaf keeps in host memory between frames.
type lazyState struct {
	size layout.Size
}

// Lazy places a control whose size is only known after it has been shown.
//
// The size observed while drawing is stored in host memory under the
// leaf's ID and used as the estimate the next time a Lazy with the same ID
// is measured. Without a stored size the leaf claims everything it is
// offered and, once drawn, asks the host to discard the frame so the layout
// can be recomputed with the real size.
type Lazy struct {
	once    layout.Once
	control layout.Control
	id      layout.ID
}

// NewLazy wraps control. The id must stay the same across frames for the
// cached size to be found again.
func NewLazy(control layout.Control, id layout.ID) *Lazy {
	return &Lazy{control: control, id: id}
}

func (l *Lazy) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	size, m := l.MeasureAs(max, ui)
	return size, m
}

func (l *Lazy) MeasureAs(max layout.Size, ui layout.Shaper) (layout.Size, *MeasuredLazy) {
	if !l.once.Take("measure lazy " + string(l.id)) {
		return layout.Size{}, &MeasuredLazy{}
	}
	m := &MeasuredLazy{control: l.control, id: l.id}
	l.control = nil
	if size, ok := CachedSize(ui.Memory(), m.id); ok {
		return size, m
	}
	m.firstPass = true
	return max, m
}

// MeasuredLazy is a Lazy leaf after measurement.
type MeasuredLazy struct {
	once      layout.Once
	control   layout.Control
	id        layout.ID
	firstPass bool
}

// FirstPass reports whether the leaf was measured without a cached size.
func (m *MeasuredLazy) FirstPass() bool {
	return m.firstPass
}

// Draw shows the control, records the size it took and, if the layout was
// built on a placeholder, requests a discard of the current frame.
func (m *MeasuredLazy) Draw(region layout.Rect, ui layout.Painter) {
	if !m.once.Take("draw lazy "+string(m.id)) || m.control == nil {
		return
	}
	rect := ui.Add(m.control)
	ui.Memory().Set(m.id, lazyState{size: rect.Size()})
	if m.firstPass {
		ui.RequestDiscard("layout")
	}
}

// CachedSize returns the size last observed for id.
func CachedSize(mem layout.Memory, id layout.ID) (layout.Size, bool) {
	if mem == nil {
		return layout.Size{}, false
	}
	v, ok := mem.Get(id)
	if !ok {
		return layout.Size{}, false
	}
	st, ok := v.(lazyState)
	if !ok {
		return layout.Size{}, false
	}
	return st.size, true
}
