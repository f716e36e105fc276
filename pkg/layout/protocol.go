// Package layout implements a two-phase, immediate-mode layout protocol.
//
// A tree of nodes is rebuilt for every frame. Measure walks the tree once,
// offering each node a maximum size and receiving its natural size together
// with a Drawer. Draw then walks the measured tree once, assigning each node
// a rectangle and emitting paint calls into the host. Both phases consume the
// object they are called on: a node is measured at most once and a measured
// node is drawn at most once.
package layout

import (
	"image"
	"image/color"

	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
)

// Drawer is a measured node, ready to paint into an assigned rectangle.
// Draw consumes the receiver.
type Drawer interface {
	Draw(region Rect, ui Painter)
}

// Measurer is a node that can report its natural size for a given maximum.
// Measure consumes the receiver and returns the Drawer for the next phase.
//
// Containers store their children as Measurers, which lets leaves and
// subtrees of unrelated concrete types share one child list.
type Measurer interface {
	Measure(max Size, ui Shaper) (Size, Drawer)
}

// Measurable is the typed form of Measurer: MeasureAs returns the concrete
// measured type D instead of the erased Drawer handle.
type Measurable[D Drawer] interface {
	MeasureAs(max Size, ui Shaper) (Size, D)
}

// Erase adapts a typed node into a Measurer so it can be stored next to
// nodes whose measured types differ.
func Erase[D Drawer](m Measurable[D]) Measurer {
	return erased[D]{m: m}
}

type erased[D Drawer] struct {
	m Measurable[D]
}

func (e erased[D]) Measure(max Size, ui Shaper) (Size, Drawer) {
	size, d := e.m.MeasureAs(max, ui)
	return size, d
}

// Shaper is the read-only view of the host available while measuring.
type Shaper interface {
	// Shape lays out span into an immutable run no wider than maxWidth.
	Shape(span text.Span, maxWidth float64) *text.Run
	Visuals() style.Visuals
	Memory() Memory
}

// Painter is the mutable host surface a measured node draws into. A Painter
// is scoped to a region; Scope returns a child painter clipped to a
// sub-rectangle.
type Painter interface {
	Shaper

	Region() Rect
	Scope(region Rect) Painter

	DrawRun(run *text.Run, origin Position, c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width float64)
	// DrawImage paints img scaled to fill r.
	DrawImage(img image.Image, r Rect)

	// Add renders an interactive control at the scope's origin and returns
	// the rectangle it actually occupied.
	Add(c Control) Rect

	// RequestDiscard asks the host to throw away the frame being drawn and
	// rerun measure and draw before presenting anything.
	RequestDiscard(reason string)
}

// Control is a host widget whose size is only known once it has been shown.
type Control interface {
	Show(ui Painter) Rect
}

// Clickable controls react to a tap inside the rectangle they were shown in.
type Clickable interface {
	Click()
}

// ID is a stable identity token for state kept across frames.
type ID string

// With derives a child identity namespaced under id.
func (id ID) With(part string) ID {
	if id == "" {
		return ID(part)
	}
	return id + "/" + ID(part)
}

// Memory is the host's persistent keyed store. It lives as long as the host
// context, so values survive between frames while their ID is reused.
type Memory interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
}

// Nothing is a Drawer that paints nothing.
var Nothing Drawer = nothing{}

type nothing struct{}

func (nothing) Draw(Rect, Painter) {}
