// Package style holds the visual settings shared by the host and widgets.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Visuals are the colors and font sizes a frame is painted with.
type Visuals struct {
	Background color.Color // panel fill behind the whole frame
	Text       color.Color // foreground color for text leaves

	ControlFill   color.Color // button and input background
	ControlStroke color.Color // button and input outline
	ControlText   color.Color
	HintText      color.Color // placeholder text in empty inputs

	FontSize    float64 // body text size in points
	HeadingSize float64

	// ButtonPadding is the space between a control's text and its outline.
	ButtonPadding float64
	// InputWidth is the preferred width of a text input, in pixels.
	InputWidth float64
}

// Dark returns the default dark visuals.
func Dark() Visuals {
	return Visuals{
		Background:    color.RGBA{27, 27, 27, 255},
		Text:          color.RGBA{200, 200, 200, 255},
		ControlFill:   color.RGBA{60, 60, 60, 255},
		ControlStroke: color.RGBA{100, 100, 100, 255},
		ControlText:   color.RGBA{230, 230, 230, 255},
		HintText:      color.RGBA{128, 128, 128, 255},
		FontSize:      14,
		HeadingSize:   20,
		ButtonPadding: 6,
		InputWidth:    280,
	}
}

// Light returns light visuals.
func Light() Visuals {
	v := Dark()
	v.Background = color.RGBA{248, 248, 248, 255}
	v.Text = color.RGBA{60, 60, 60, 255}
	v.ControlFill = color.RGBA{230, 230, 230, 255}
	v.ControlStroke = color.RGBA{190, 190, 190, 255}
	v.ControlText = color.RGBA{20, 20, 20, 255}
	v.HintText = color.RGBA{150, 150, 150, 255}
	return v
}

// Lookup returns the named visuals ("dark" or "light").
func Lookup(name string) (Visuals, error) {
	switch strings.ToLower(name) {
	case "", "dark":
		return Dark(), nil
	case "light":
		return Light(), nil
	}
	return Visuals{}, fmt.Errorf("unknown visuals %q", name)
}

var namedColors = map[string]color.RGBA{
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"pink":    {255, 192, 203, 255},
	"brown":   {165, 42, 42, 255},
	"lime":    {0, 255, 0, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"silver":  {192, 192, 192, 255},

	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a named color or a #rgb, #rrggbb or #rrggbbaa hex value.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}
