// Package layouttest provides an in-memory Painter and probe leaves for
// testing nodes without a paint backend.
package layouttest

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/style"
	"lazyflex/pkg/text"
)

// OpKind identifies a recorded paint call.
type OpKind string

const (
	OpFill    OpKind = "fill"
	OpStroke  OpKind = "stroke"
	OpRun     OpKind = "run"
	OpImage   OpKind = "image"
	OpControl OpKind = "control"
)

// Op is one recorded paint call.
type Op struct {
	Kind   OpKind
	Rect   layout.Rect // filled, stroked or occupied rectangle; run bounds for OpRun
	Clip   layout.Rect // clip of the scope the call was made in
	Run    *text.Run
	Image  image.Image
	Color  color.Color
	Origin layout.Position
}

// Memory is a map-backed layout.Memory.
type Memory map[layout.ID]any

func (m Memory) Get(id layout.ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m Memory) Set(id layout.ID, value any) {
	m[id] = value
}

type shared struct {
	shaper   *text.Shaper
	visuals  style.Visuals
	memory   Memory
	ops      []Op
	discards []string
}

// Recorder is a layout.Painter that records every call. Scopes share the
// recording of the Recorder they were derived from.
type Recorder struct {
	s      *shared
	region layout.Rect
	clip   layout.Rect
}

// New returns a recorder scoped to region, shaping with basicfont.Face7x13
// (7px advance, 13px lines) and a fresh memory.
func New(region layout.Rect) *Recorder {
	return &Recorder{
		s: &shared{
			shaper:  text.Fixed(basicfont.Face7x13),
			visuals: style.Dark(),
			memory:  Memory{},
		},
		region: region,
		clip:   region,
	}
}

// WithMemory returns a recorder for the next frame: fresh ops and discard
// requests, the same memory.
func (r *Recorder) WithMemory(region layout.Rect) *Recorder {
	next := New(region)
	next.s.memory = r.s.memory
	next.s.visuals = r.s.visuals
	return next
}

func (r *Recorder) Ops() []Op {
	return r.s.ops
}

// OpsOf returns the recorded calls of one kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.s.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Discards() []string {
	return r.s.discards
}

func (r *Recorder) Clip() layout.Rect {
	return r.clip
}

func (r *Recorder) Shape(span text.Span, maxWidth float64) *text.Run {
	return r.s.shaper.Shape(span, maxWidth)
}

func (r *Recorder) Visuals() style.Visuals {
	return r.s.visuals
}

func (r *Recorder) Memory() layout.Memory {
	return r.s.memory
}

func (r *Recorder) Region() layout.Rect {
	return r.region
}

func (r *Recorder) Scope(region layout.Rect) layout.Painter {
	return &Recorder{s: r.s, region: region, clip: r.clip.Intersect(region)}
}

func (r *Recorder) DrawRun(run *text.Run, origin layout.Position, c color.Color) {
	w, h := run.Size()
	r.record(Op{
		Kind:   OpRun,
		Rect:   layout.RectFromMinSize(origin, layout.Size{Width: w, Height: h}),
		Run:    run,
		Color:  c,
		Origin: origin,
	})
}

func (r *Recorder) FillRect(rect layout.Rect, c color.Color) {
	r.record(Op{Kind: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect layout.Rect, c color.Color, width float64) {
	r.record(Op{Kind: OpStroke, Rect: rect, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, rect layout.Rect) {
	r.record(Op{Kind: OpImage, Rect: rect, Image: img})
}

func (r *Recorder) Add(c layout.Control) layout.Rect {
	rect := c.Show(r)
	r.record(Op{Kind: OpControl, Rect: rect})
	return rect
}

func (r *Recorder) RequestDiscard(reason string) {
	r.s.discards = append(r.s.discards, reason)
}

func (r *Recorder) record(op Op) {
	op.Clip = r.clip
	r.s.ops = append(r.s.ops, op)
}
