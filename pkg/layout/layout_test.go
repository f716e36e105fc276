package layout_test

import (
	"errors"
	"io"
	"log"
	"math"
	"reflect"
	"testing"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/layout/layouttest"
)

func init() {
	layout.SetLogger(log.New(io.Discard, "", 0))
}

func params(d layout.Direction, main, cross layout.Alignment) layout.Params {
	return layout.Params{Direction: d, MainAxisAlignment: main, CrossAxisAlignment: cross}
}

func rect(x0, y0, x1, y1 float64) layout.Rect {
	return layout.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// measureAndDraw measures l against offered and draws the result into region.
func measureAndDraw(l *layout.Layout, offered layout.Size, region layout.Rect) (layout.Size, *layouttest.Recorder) {
	ui := layouttest.New(region)
	size, d := l.Measure(offered, ui)
	d.Draw(region, ui)
	return size, ui
}

func TestLayout_Scenario_RowStartStart(t *testing.T) {
	a, b := layouttest.NewProbe(50, 20), layouttest.NewProbe(30, 40)
	l := layout.New(params(layout.Row, layout.Start, layout.Start)).With(a.Node()).With(b.Node())

	size, _ := measureAndDraw(l, layout.Size{Width: 200, Height: 100}, rect(0, 0, 200, 100))

	if size != (layout.Size{Width: 80, Height: 40}) {
		t.Errorf("measured = %+v, want 80x40", size)
	}
	if got := a.Drawn[0]; got != rect(0, 0, 50, 20) {
		t.Errorf("child1 = %v, want (0,0)-(50,20)", got)
	}
	if got := b.Drawn[0]; got != rect(50, 0, 80, 40) {
		t.Errorf("child2 = %v, want (50,0)-(80,40)", got)
	}
}

func TestLayout_Scenario_CrossCenter(t *testing.T) {
	a, b := layouttest.NewProbe(50, 20), layouttest.NewProbe(30, 40)
	l := layout.New(params(layout.Row, layout.Start, layout.Center)).With(a.Node()).With(b.Node())

	ui := layouttest.New(rect(0, 0, 200, 100))
	size, d := l.Measure(layout.Size{Width: 200, Height: 100}, ui)
	d.Draw(layout.RectFromMinSize(layout.Position{}, size), ui)

	if a.Drawn[0].Y != 10 {
		t.Errorf("child1 y = %v, want 10", a.Drawn[0].Y)
	}
	if b.Drawn[0].Y != 0 {
		t.Errorf("child2 y = %v, want 0", b.Drawn[0].Y)
	}
}

func TestLayout_Scenario_ColumnEnd(t *testing.T) {
	a, b := layouttest.NewProbe(10, 20), layouttest.NewProbe(10, 20)
	l := layout.New(params(layout.Column, layout.End, layout.Start)).With(a.Node()).With(b.Node())

	measureAndDraw(l, layout.Size{Width: 50, Height: 100}, rect(0, 0, 50, 100))

	if a.Drawn[0].Y != 60 || b.Drawn[0].Y != 80 {
		t.Errorf("main offsets = %v, %v; want 60, 80", a.Drawn[0].Y, b.Drawn[0].Y)
	}
}

func TestLayout_MeasuredExtent(t *testing.T) {
	sizes := [][2]float64{{10, 5}, {25, 30}, {7, 12}}
	for _, d := range []layout.Direction{layout.Row, layout.Column} {
		l := layout.New(params(d, layout.Start, layout.Start))
		for _, s := range sizes {
			l.With(layouttest.NewProbe(s[0], s[1]).Node())
		}
		size, _ := l.Measure(layout.Size{Width: 1000, Height: 1000}, layouttest.New(rect(0, 0, 1000, 1000)))

		want := layout.Size{Width: 42, Height: 30}
		if d == layout.Column {
			want = layout.Size{Width: 25, Height: 47}
		}
		if size != want {
			t.Errorf("%v: measured %+v, want %+v", d, size, want)
		}
	}
}

func TestLayout_EqualMainShare(t *testing.T) {
	probes := []*layouttest.Probe{
		layouttest.NewProbe(1, 1), layouttest.NewProbe(500, 1), layouttest.NewProbe(1, 1), layouttest.NewProbe(1, 1),
	}
	l := layout.New(params(layout.Column, layout.Start, layout.Start))
	for _, p := range probes {
		l.With(p.Node())
	}
	l.Measure(layout.Size{Width: 300, Height: 200}, layouttest.New(rect(0, 0, 300, 200)))

	for i, p := range probes {
		if got := p.Offered[0]; got != (layout.Size{Width: 300, Height: 50}) {
			t.Errorf("child %d offered %+v, want 300x50", i, got)
		}
	}
}

func TestArrange_Contiguous(t *testing.T) {
	sizes := []layout.Size{{Width: 10, Height: 5}, {Width: 20, Height: 8}, {Width: 5, Height: 3}}
	region := rect(100, 50, 300, 90)
	for _, main := range []layout.Alignment{layout.Start, layout.End, layout.Center} {
		for _, d := range []layout.Direction{layout.Row, layout.Column} {
			rects := layout.Arrange(params(d, main, layout.Start), region, sizes)
			for i := 1; i < len(rects); i++ {
				prev, cur := rects[i-1], rects[i]
				gap := cur.X - (prev.X + prev.Width)
				if d == layout.Column {
					gap = cur.Y - (prev.Y + prev.Height)
				}
				if gap != 0 {
					t.Errorf("%v/%v: gap between %d and %d = %v", d, main, i-1, i, gap)
				}
			}
		}
	}
}

func TestArrange_BlockShift(t *testing.T) {
	sizes := []layout.Size{{Width: 10, Height: 5}, {Width: 20, Height: 8}, {Width: 30, Height: 3}}
	region := rect(0, 0, 100, 20)

	start := layout.Arrange(params(layout.Row, layout.Start, layout.Start), region, sizes)
	if start[0].X != 0 {
		t.Fatalf("start leading edge = %v, want 0", start[0].X)
	}

	tests := []struct {
		main  layout.Alignment
		shift float64
	}{
		{layout.End, 40},
		{layout.Center, 20},
	}
	for _, tt := range tests {
		got := layout.Arrange(params(layout.Row, tt.main, layout.Start), region, sizes)
		for i := range got {
			if d := got[i].X - start[i].X; d != tt.shift {
				t.Errorf("%v: child %d shifted by %v, want %v", tt.main, i, d, tt.shift)
			}
		}
	}
}

func TestArrange_CrossAlignment(t *testing.T) {
	sizes := []layout.Size{{Width: 10, Height: 20}, {Width: 10, Height: 40}}
	region := rect(0, 0, 100, 40)
	tests := []struct {
		cross layout.Alignment
		want  []float64
	}{
		{layout.Start, []float64{0, 0}},
		{layout.End, []float64{20, 0}},
		{layout.Center, []float64{10, 0}},
	}
	for _, tt := range tests {
		rects := layout.Arrange(params(layout.Row, layout.Start, tt.cross), region, sizes)
		got := []float64{rects[0].Y, rects[1].Y}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%v: cross offsets %v, want %v", tt.cross, got, tt.want)
		}
	}
}

func TestArrange_RegionOrigin(t *testing.T) {
	rects := layout.Arrange(params(layout.Column, layout.Center, layout.End),
		rect(10, 20, 110, 120), []layout.Size{{Width: 40, Height: 30}})
	if want := rect(70, 55, 110, 85); rects[0] != want {
		t.Errorf("got %v, want %v", rects[0], want)
	}
}

func TestArrange_OverflowClampsToStart(t *testing.T) {
	sizes := []layout.Size{{Width: 80, Height: 50}, {Width: 80, Height: 50}}
	region := rect(0, 0, 100, 20)
	for _, a := range []layout.Alignment{layout.End, layout.Center} {
		rects := layout.Arrange(params(layout.Row, a, a), region, sizes)
		if rects[0].X != 0 || rects[1].X != 80 {
			t.Errorf("%v: main offsets %v, %v; want 0, 80", a, rects[0].X, rects[1].X)
		}
		if rects[0].Y != 0 {
			t.Errorf("%v: cross offset %v, want 0", a, rects[0].Y)
		}
	}
}

func TestArrange_UnboundedRegion(t *testing.T) {
	region := layout.Rect{Width: math.Inf(1), Height: math.Inf(1)}
	rects := layout.Arrange(params(layout.Row, layout.End, layout.Center), region, []layout.Size{{Width: 10, Height: 10}})
	if rects[0].X != 0 || rects[0].Y != 0 {
		t.Errorf("got %v, want origin", rects[0])
	}
}

func TestLayout_ZeroChildren(t *testing.T) {
	l := layout.New(layout.DefaultParams())
	size, ui := measureAndDraw(l, layout.Size{Width: 100, Height: 100}, rect(0, 0, 100, 100))
	if size != (layout.Size{}) {
		t.Errorf("size = %+v, want zero", size)
	}
	if len(ui.Ops()) != 0 {
		t.Errorf("ops = %d, want none", len(ui.Ops()))
	}
}

func TestLayout_NegativeOfferIsClamped(t *testing.T) {
	p := layouttest.NewProbe(5, 5)
	l := layout.New(layout.DefaultParams()).With(p.Node())
	l.Measure(layout.Size{Width: -10, Height: math.NaN()}, layouttest.New(layout.Rect{}))
	if got := p.Offered[0]; got != (layout.Size{}) {
		t.Errorf("offered %+v, want zero", got)
	}
}

func TestLayout_DrawOrderAndScopes(t *testing.T) {
	a, b, c := layouttest.NewProbe(10, 10), layouttest.NewProbe(20, 10), layouttest.NewProbe(30, 10)
	l := layout.New(params(layout.Row, layout.Start, layout.Start)).With(a.Node()).With(b.Node()).With(c.Node())
	measureAndDraw(l, layout.Size{Width: 100, Height: 10}, rect(0, 0, 100, 10))

	for _, p := range []*layouttest.Probe{a, b, c} {
		if len(p.Drawn) != 1 {
			t.Fatalf("drawn %d times, want 1", len(p.Drawn))
		}
		if p.Scopes[0] != p.Drawn[0] {
			t.Errorf("scope %v differs from assigned rect %v", p.Scopes[0], p.Drawn[0])
		}
	}
	if !(a.Drawn[0].X < b.Drawn[0].X && b.Drawn[0].X < c.Drawn[0].X) {
		t.Error("children not laid out in insertion order")
	}
}

func TestLayout_Nested(t *testing.T) {
	a, b, c := layouttest.NewProbe(10, 10), layouttest.NewProbe(10, 20), layouttest.NewProbe(40, 5)
	inner := layout.New(params(layout.Column, layout.Start, layout.Start)).With(a.Node()).With(b.Node())
	outer := layout.New(params(layout.Row, layout.Start, layout.Start)).With(inner).With(c.Node())

	size, _ := measureAndDraw(outer, layout.Size{Width: 200, Height: 100}, rect(0, 0, 200, 100))
	if size != (layout.Size{Width: 50, Height: 30}) {
		t.Errorf("size = %+v, want 50x30", size)
	}
	if b.Drawn[0] != rect(0, 10, 10, 30) {
		t.Errorf("nested child = %v", b.Drawn[0])
	}
	if c.Drawn[0].X != 10 {
		t.Errorf("sibling x = %v, want 10", c.Drawn[0].X)
	}
	if got := a.Offered[0]; got != (layout.Size{Width: 100, Height: 50}) {
		t.Errorf("nested offer = %+v, want 100x50", got)
	}
}

func TestLayout_SingleUse(t *testing.T) {
	p := layouttest.NewProbe(10, 10)
	l := layout.New(layout.DefaultParams()).With(p.Node())
	ui := layouttest.New(rect(0, 0, 100, 100))

	_, d := l.Measure(layout.Size{Width: 100, Height: 100}, ui)
	d.Draw(rect(0, 0, 100, 100), ui)
	d.Draw(rect(0, 0, 100, 100), ui)
	if len(p.Drawn) != 1 {
		t.Errorf("child drawn %d times, want 1", len(p.Drawn))
	}

	size, again := l.Measure(layout.Size{Width: 100, Height: 100}, ui)
	if size != (layout.Size{}) {
		t.Errorf("second measure size = %+v, want zero", size)
	}
	again.Draw(rect(0, 0, 100, 100), ui)
	if len(p.Offered) != 1 || len(p.Drawn) != 1 {
		t.Error("second measure must not reach the children")
	}
}

func TestOnce(t *testing.T) {
	var o layout.Once
	if o.Consumed() {
		t.Fatal("zero Once should be unused")
	}
	if err := o.Consume("draw"); err != nil {
		t.Fatalf("first consume: %v", err)
	}
	err := o.Consume("draw")
	if !errors.Is(err, layout.ErrConsumed) {
		t.Errorf("second consume = %v, want ErrConsumed", err)
	}
	if o.Take("draw") {
		t.Error("Take after consume should report false")
	}
}

func TestErase(t *testing.T) {
	p := layouttest.NewProbe(12, 34)
	var typed layout.Measurable[*layouttest.ProbeDrawer] = p.Node()
	erased := layout.Erase[*layouttest.ProbeDrawer](typed)

	l := layout.New(params(layout.Row, layout.Start, layout.Start)).With(erased).With(layouttest.NewProbe(1, 1).Node())
	size, _ := measureAndDraw(l, layout.Size{Width: 100, Height: 100}, rect(0, 0, 100, 100))
	if size != (layout.Size{Width: 13, Height: 34}) {
		t.Errorf("size = %+v, want 13x34", size)
	}
	if len(p.Drawn) != 1 {
		t.Errorf("erased child drawn %d times, want 1", len(p.Drawn))
	}
}

func TestParse(t *testing.T) {
	if d, err := layout.ParseDirection("Column"); err != nil || d != layout.Column {
		t.Errorf("ParseDirection(Column) = %v, %v", d, err)
	}
	if _, err := layout.ParseDirection("diagonal"); err == nil {
		t.Error("expected error for unknown direction")
	}
	for _, a := range []layout.Alignment{layout.Start, layout.End, layout.Center} {
		got, err := layout.ParseAlignment(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := layout.ParseAlignment("stretch"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}

func TestDefaultParams(t *testing.T) {
	want := params(layout.Row, layout.Center, layout.Start)
	if got := layout.DefaultParams(); got != want {
		t.Errorf("DefaultParams = %+v, want %+v", got, want)
	}
}

func TestRect(t *testing.T) {
	r := rect(0, 0, 10, 10)
	if !r.Contains(layout.Position{X: 5, Y: 5}) || r.Contains(layout.Position{X: 10, Y: 5}) {
		t.Error("Contains: right edge must be exclusive")
	}
	if got := r.Intersect(rect(5, 5, 20, 20)); got != rect(5, 5, 10, 10) {
		t.Errorf("Intersect = %v", got)
	}
	if !r.Intersect(rect(20, 20, 30, 30)).Empty() {
		t.Error("disjoint intersection should be empty")
	}
	if id := layout.ID("panel").With("open"); id != "panel/open" {
		t.Errorf("ID.With = %q", id)
	}
}
