package layout

import (
	"fmt"
	"math"
	"strings"
)

// Size represents dimensions (width and height)
type Size struct {
	Width  float64
	Height float64
}

// Position represents a 2D coordinate
type Position struct {
	X float64
	Y float64
}

// Rect represents a rectangular region
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(min Position, size Size) Rect {
	return Rect{X: min.X, Y: min.Y, Width: size.Width, Height: size.Height}
}

// Min returns the top-left corner.
func (r Rect) Min() Position {
	return Position{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Position {
	return Position{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.Width <= r.X+r.Width && o.Y+o.Height <= r.Y+r.Height
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield an empty
// rectangle positioned at the clamped corner.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: math.Max(0, x1-x0), Height: math.Max(0, y1-y0)}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Direction selects the main axis of a container.
type Direction int

const (
	Row    Direction = iota // main axis is horizontal
	Column                  // main axis is vertical
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "row" or "column" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row":
		return Row, nil
	case "column", "col":
		return Column, nil
	}
	return Row, fmt.Errorf("unknown direction %q", s)
}

// main returns the component of s along the main axis.
func (d Direction) main(s Size) float64 {
	if d == Column {
		return s.Height
	}
	return s.Width
}

// cross returns the component of s along the cross axis.
func (d Direction) cross(s Size) float64 {
	if d == Column {
		return s.Width
	}
	return s.Height
}

// size builds a Size from main and cross components.
func (d Direction) size(main, cross float64) Size {
	if d == Column {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// offset builds a Position from main and cross offsets.
func (d Direction) offset(main, cross float64) Position {
	if d == Column {
		return Position{X: cross, Y: main}
	}
	return Position{X: main, Y: cross}
}

// Alignment places children along one axis.
type Alignment int

const (
	Start Alignment = iota
	End
	Center
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	case Center:
		return "center"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "start", "end" or "center" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return Start, nil
	case "end":
		return End, nil
	case "center", "centre":
		return Center, nil
	}
	return Start, fmt.Errorf("unknown alignment %q", s)
}

// Params configures one container. It is immutable once attached.
type Params struct {
	Direction          Direction
	MainAxisAlignment  Alignment
	CrossAxisAlignment Alignment
}

// DefaultParams returns a row that centers its children on the main axis
// and aligns them to the start of the cross axis.
func DefaultParams() Params {
	return Params{
		Direction:          Row,
		MainAxisAlignment:  Center,
		CrossAxisAlignment: Start,
	}
}
