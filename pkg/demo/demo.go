// Package demo holds built-in scenes used by the command line tools.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"lazyflex/pkg/host"
	"lazyflex/pkg/layout"
	"lazyflex/pkg/widgets"
)

// Version is shown by the Simple scene.
var Version = "0.1.0"

// Simple is a small two-panel form: load traces on the left, listen for
// traces on the right.
type Simple struct {
	Address string
	Opened  int
	Listens []string
}

func (s *Simple) Scene() layout.Measurer {
	column := layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Start, CrossAxisAlignment: layout.Start}

	load := layout.New(column).
		With(widgets.NewText("load traces")).
		With(widgets.NewLazy(widgets.NewButton("open", func() { s.Opened++ }), "open"))

	listen := layout.New(column).
		With(widgets.NewText("listen for traces")).
		With(widgets.NewLazy(&widgets.TextInput{Value: s.Address, Hint: "address"}, "address_input")).
		With(widgets.NewLazy(widgets.NewButton("listen", func() {
			s.Listens = append(s.Listens, s.Address)
		}), "listen"))

	panels := layout.New(layout.Params{Direction: layout.Row, MainAxisAlignment: layout.Center, CrossAxisAlignment: layout.Center}).
		With(widgets.NewFrame(load)).
		With(widgets.NewFrame(listen))

	return layout.New(layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Start, CrossAxisAlignment: layout.Center}).
		With(widgets.NewText("extern_traces").Heading()).
		With(widgets.NewText(fmt.Sprintf("v%s", Version))).
		With(widgets.NewFrame(panels))
}

// Text centres a single short text in the viewport.
func Text() layout.Measurer {
	return layout.New(layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Center, CrossAxisAlignment: layout.Center}).
		With(widgets.NewText("short"))
}

// CounterLimit is the count past which both counters stop.
const CounterLimit = 10

// Counter has two counters, each with a button, and a status line.
type Counter struct {
	First, Second int
}

// Done reports whether both counters are past the limit.
func (c *Counter) Done() bool {
	return c.First > CounterLimit && c.Second > CounterLimit
}

func (c *Counter) Status() string {
	switch {
	case c.Done():
		return "Status: Max count hit"
	case c.First%5 == 0 || c.Second%5 == 0:
		return "Status: Milestone reached!"
	default:
		return "Status: Counting..."
	}
}

func (c *Counter) Scene() layout.Measurer {
	first := widgets.NewButton("Increment Counter 1", func() { c.First++ })
	second := widgets.NewButton("Increment Counter 2", func() { c.Second++ })
	first.Disabled, second.Disabled = c.Done(), c.Done()

	return layout.New(layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Start, CrossAxisAlignment: layout.Start}).
		With(widgets.NewText("Counter App").Heading()).
		With(widgets.NewText(fmt.Sprintf("Counter 1: %d", c.First))).
		With(widgets.NewText(fmt.Sprintf("Counter 2: %d", c.Second))).
		With(widgets.NewText(c.Status())).
		With(widgets.NewLazy(first, "counter1")).
		With(widgets.NewLazy(second, "counter2"))
}

// Greeter adds one greeting line per click of its button.
type Greeter struct {
	Count int
}

func (g *Greeter) Scene() layout.Measurer {
	l := layout.New(layout.Params{Direction: layout.Column, MainAxisAlignment: layout.Start, CrossAxisAlignment: layout.Start}).
		With(widgets.NewLazy(widgets.NewButton("hello world", func() { g.Count++ }), "hello"))
	for i := 0; i < g.Count; i++ {
		l.With(widgets.NewText(fmt.Sprintf("hello %d", i)))
	}
	return l
}

var scenes = map[string]func() host.Scene{
	"simple":  func() host.Scene { return (&Simple{}).Scene },
	"text":    func() host.Scene { return Text },
	"counter": func() host.Scene { return (&Counter{}).Scene },
	"greeter": func() host.Scene { return (&Greeter{}).Scene },
}

// Names lists the built-in scenes.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh instance of the named scene, with its own state.
func Lookup(name string) (host.Scene, error) {
	newScene, ok := scenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return newScene(), nil
}
