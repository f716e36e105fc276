package widgets

import (
	"math"

	"lazyflex/pkg/layout"
	"lazyflex/pkg/text"
)

// Button is a clickable label. Its size depends on the label as shaped by
// the host, so it is normally placed through a Lazy leaf.
type Button struct {
	Label    string
	Disabled bool
	OnClick  func()
}

func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, OnClick: onClick}
}

// Show paints the button at the scope's origin and returns its rectangle.
func (b *Button) Show(ui layout.Painter) layout.Rect {
	v := ui.Visuals()
	pad := v.ButtonPadding
	run := ui.Shape(text.Span{Text: b.Label, Size: v.FontSize, NoWrap: true}, math.Inf(1))
	w, h := run.Size()

	rect := layout.RectFromMinSize(ui.Region().Min(), layout.Size{Width: w + 2*pad, Height: h + pad})
	ui.FillRect(rect, v.ControlFill)
	ui.StrokeRect(rect, v.ControlStroke, 1)

	fg := v.ControlText
	if b.Disabled {
		fg = v.HintText
	}
	ui.DrawRun(run, layout.Position{X: rect.X + pad, Y: rect.Y + pad/2}, fg)
	return rect
}

// Click runs OnClick unless the button is disabled.
func (b *Button) Click() {
	if b.Disabled || b.OnClick == nil {
		return
	}
	b.OnClick()
}

// TextInput is a single-line text field. It takes its preferred width, or
// the width of the region it is shown in when that is narrower.
type TextInput struct {
	Value string
	Hint  string
	Width float64 // zero uses the visuals' input width
}

func NewTextInput(value string) *TextInput {
	return &TextInput{Value: value}
}

func (in *TextInput) Show(ui layout.Painter) layout.Rect {
	v := ui.Visuals()
	pad := v.ButtonPadding
	region := ui.Region()

	width := in.Width
	if width <= 0 {
		width = v.InputWidth
	}
	if region.Width > 0 && width > region.Width {
		width = region.Width
	}

	content, fg := in.Value, v.ControlText
	if content == "" {
		content, fg = in.Hint, v.HintText
	}
	run := ui.Shape(text.Span{Text: content, Size: v.FontSize, NoWrap: true}, math.Inf(1))

	rect := layout.RectFromMinSize(region.Min(), layout.Size{Width: width, Height: run.LineHeight() + pad})
	ui.FillRect(rect, v.ControlFill)
	ui.StrokeRect(rect, v.ControlStroke, 1)
	ui.Scope(rect).DrawRun(run, layout.Position{X: rect.X + pad, Y: rect.Y + pad/2}, fg)
	return rect
}
