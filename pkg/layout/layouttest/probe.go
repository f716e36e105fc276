package layouttest

import "lazyflex/pkg/layout"

// Probe is a leaf with a fixed natural size that records the sizes it was
// offered and the regions it was drawn into. Node returns a fresh
// single-use node reporting to the probe, one per frame.
type Probe struct {
	Natural layout.Size
	Offered []layout.Size
	Drawn   []layout.Rect
	Scopes  []layout.Rect // Region() of the painter each draw received
}

func NewProbe(width, height float64) *Probe {
	return &Probe{Natural: layout.Size{Width: width, Height: height}}
}

// Node returns a new single-use node for this probe.
func (p *Probe) Node() *ProbeNode {
	return &ProbeNode{probe: p}
}

type ProbeNode struct {
	once  layout.Once
	probe *Probe
}

func (n *ProbeNode) Measure(max layout.Size, ui layout.Shaper) (layout.Size, layout.Drawer) {
	size, d := n.MeasureAs(max, ui)
	return size, d
}

func (n *ProbeNode) MeasureAs(max layout.Size, ui layout.Shaper) (layout.Size, *ProbeDrawer) {
	if !n.once.Take("measure probe") {
		return layout.Size{}, &ProbeDrawer{}
	}
	n.probe.Offered = append(n.probe.Offered, max)
	return n.probe.Natural, &ProbeDrawer{probe: n.probe}
}

type ProbeDrawer struct {
	once  layout.Once
	probe *Probe
}

func (d *ProbeDrawer) Draw(region layout.Rect, ui layout.Painter) {
	if !d.once.Take("draw probe") || d.probe == nil {
		return
	}
	d.probe.Drawn = append(d.probe.Drawn, region)
	d.probe.Scopes = append(d.probe.Scopes, ui.Region())
}

// Control is a layout.Control with a fixed rendered size that counts how
// often it was shown.
type Control struct {
	Size   layout.Size
	Shown  int
	Clicks int
}

func (c *Control) Show(ui layout.Painter) layout.Rect {
	c.Shown++
	return layout.RectFromMinSize(ui.Region().Min(), c.Size)
}

func (c *Control) Click() {
	c.Clicks++
}
